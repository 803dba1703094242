package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderLoadFailed indicates the template could not be read.
	ProviderLoadFailed ProviderErrorType = iota
	// ProviderNotFound indicates the template file does not exist.
	ProviderNotFound
	// ProviderInvalidTemplate indicates the template is unusable (empty, not a file).
	ProviderInvalidTemplate
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderLoadFailed:
		return "LoadFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderInvalidTemplate:
		return "InvalidTemplate"
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
	// Provider is the provider name (e.g., "embedded", "local").
	Provider string
	// Path is the template path that caused the error.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.Path, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, path, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Path:     path,
		Cause:    cause,
	}
}

// NewLoadError creates a load failed error.
func NewLoadError(provider, path string, cause error) *ProviderError {
	return NewProviderError(ProviderLoadFailed, provider, path, "failed to load template", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, path string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, path, "template not found", nil)
}

// NewInvalidTemplateError creates an invalid template error.
func NewInvalidTemplateError(provider, path, message string) *ProviderError {
	return NewProviderError(ProviderInvalidTemplate, provider, path, message, nil)
}
