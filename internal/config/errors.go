package config

import (
	"fmt"
	"strings"
)

// ConfigErrorType classifies configuration errors.
type ConfigErrorType int

const (
	// ConfigNotFound indicates an explicitly requested file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates a file or environment override could not be decoded.
	ConfigInvalid
	// ConfigValidationFailed indicates a value is out of range.
	ConfigValidationFailed
	// ConfigWriteFailed indicates Save could not write the file.
	ConfigWriteFailed
)

// String returns the error type name.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "ConfigNotFound"
	case ConfigInvalid:
		return "ConfigInvalid"
	case ConfigValidationFailed:
		return "ConfigValidationFailed"
	case ConfigWriteFailed:
		return "ConfigWriteFailed"
	default:
		return fmt.Sprintf("ConfigErrorType(%d)", int(t))
	}
}

// ConfigError is returned by loading, validating and saving configuration.
type ConfigError struct {
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the configuration file path; empty for validation of an
	// in-memory Config or environment-only configuration.
	File string
	// Field is the dotted key that failed validation (e.g. "cache.size").
	Field string
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.File != "" {
		fmt.Fprintf(&b, " in %s", e.File)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [field: %s]", e.Field)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigErrorWithField creates a validation-style error for one key.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Field:   field,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a ConfigError wrapping cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// fieldError is a ConfigValidationFailed error for key.
func fieldError(key, message string) *ConfigError {
	return NewConfigErrorWithField(ConfigValidationFailed, "", key, message)
}
