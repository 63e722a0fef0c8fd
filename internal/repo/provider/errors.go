package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderFetchFailed indicates the repository could not be fetched.
	ProviderFetchFailed ProviderErrorType = iota
	// ProviderNotFound indicates the repository or file does not exist (or is private).
	ProviderNotFound
	// ProviderAuthFailed indicates authentication failed.
	ProviderAuthFailed
	// ProviderRateLimited indicates the API rate limit was exhausted.
	ProviderRateLimited
	// ProviderTimeout indicates the operation timed out.
	ProviderTimeout
	// ProviderInvalidURL indicates the URL format is invalid.
	ProviderInvalidURL
	// ProviderInvalidResponse indicates the provider returned data we could not decode.
	ProviderInvalidResponse
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderFetchFailed:
		return "FetchFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderAuthFailed:
		return "AuthFailed"
	case ProviderRateLimited:
		return "RateLimited"
	case ProviderTimeout:
		return "Timeout"
	case ProviderInvalidURL:
		return "InvalidURL"
	case ProviderInvalidResponse:
		return "InvalidResponse"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "github", "local").
	Provider string
	// URL is the repository URL that caused the error.
	URL string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.URL, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Is matches another *ProviderError of the same type, so callers can write
// errors.Is(err, &ProviderError{Type: ProviderNotFound}).
func (e *ProviderError) Is(target error) bool {
	t, ok := target.(*ProviderError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, url, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		URL:      url,
		Cause:    cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(provider, url string, cause error) *ProviderError {
	return NewProviderError(ProviderFetchFailed, provider, url, "failed to fetch repository data", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, url string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, url, "repository not found or is private", nil)
}

// NewFileNotFoundError creates a not found error for a single file.
func NewFileNotFoundError(provider, url, file string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, url, fmt.Sprintf("%s not found", file), nil)
}

// NewAuthError creates an authentication failed error.
func NewAuthError(provider, url string) *ProviderError {
	return NewProviderError(ProviderAuthFailed, provider, url, "authentication failed (private repository or bad token?)", nil)
}

// NewRateLimitError creates a rate limited error.
func NewRateLimitError(provider, url string) *ProviderError {
	return NewProviderError(ProviderRateLimited, provider, url, "API rate limit exceeded (set GITHUB_TOKEN to raise it)", nil)
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(provider, url string, cause error) *ProviderError {
	return NewProviderError(ProviderTimeout, provider, url, "operation timed out", cause)
}

// NewInvalidURLError creates an invalid URL error.
func NewInvalidURLError(provider, url string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidURL, provider, url, "invalid URL format", cause)
}

// NewInvalidResponseError creates an invalid response error.
func NewInvalidResponseError(provider, url, message string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidResponse, provider, url, message, cause)
}
