package render

import "fmt"

// RenderErrorType represents the type of rendering error.
type RenderErrorType int

const (
	// MissingCursor indicates a template without a ${cursor} token.
	MissingCursor RenderErrorType = iota
	// UnknownToken indicates a ${...} token the renderer does not recognise.
	UnknownToken
)

// RenderError represents a template rendering error.
type RenderError struct {
	// Type is the error type.
	Type RenderErrorType
	// Message is the error message.
	Message string
	// Line is the zero-based line of the offending token, -1 if not applicable.
	Line int
	// Token is the problematic token text.
	Token string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Line >= 0 && e.Token != "" {
		return fmt.Sprintf("line %d: %s (token: %s)", e.Line+1, e.Message, e.Token)
	}
	if e.Token != "" {
		return fmt.Sprintf("%s (token: %s)", e.Message, e.Token)
	}
	return e.Message
}

// Is reports whether target is a RenderError of the same type.
func (e *RenderError) Is(target error) bool {
	t, ok := target.(*RenderError)
	return ok && t.Type == e.Type
}

// ErrMissingCursor matches any MissingCursor error with errors.Is.
var ErrMissingCursor = &RenderError{Type: MissingCursor, Line: -1}
