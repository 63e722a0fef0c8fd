package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ResolveFailed indicates a URL or path could not be resolved to a repository.
	ResolveFailed AppErrorType = iota
	// FetchFailed indicates repository metadata or listing could not be fetched.
	FetchFailed
	// ValidationFailed indicates validation failed.
	ValidationFailed
	// ReadmeFailed indicates the README could not be fetched.
	ReadmeFailed
)

// String returns the error type name.
func (t AppErrorType) String() string {
	switch t {
	case ResolveFailed:
		return "ResolveFailed"
	case FetchFailed:
		return "FetchFailed"
	case ValidationFailed:
		return "ValidationFailed"
	case ReadmeFailed:
		return "ReadmeFailed"
	default:
		return fmt.Sprintf("AppErrorType(%d)", int(t))
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewResolveError creates a resolve error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewFetchError creates a fetch error.
func NewFetchError(message string, cause error) *AppError {
	return NewAppError(FetchFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewReadmeError creates a README error.
func NewReadmeError(message string, cause error) *AppError {
	return NewAppError(ReadmeFailed, message, cause)
}
