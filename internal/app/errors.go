package app

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user dismisses the filename prompt.
// Nothing has been written when it is returned.
var ErrCancelled = errors.New("cancelled by user")

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// NoWorkspaceRoot indicates no workspace root directory is configured.
	NoWorkspaceRoot AppErrorType = iota
	// InvalidFilename indicates the filename failed validation.
	InvalidFilename
	// FileAlreadyExists indicates the target file is already present.
	FileAlreadyExists
	// ProjectRootNotFound indicates no project descriptor owns the target.
	ProjectRootNotFound
	// TemplateFailed indicates the template could not be loaded or rendered.
	TemplateFailed
	// WriteFailed indicates the file could not be written.
	WriteFailed
	// OpenFailed indicates the created file could not be opened.
	OpenFailed
	// ValidationFailed indicates invalid workflow options.
	ValidationFailed
	// PromptFailed indicates the prompt could not be shown or read.
	PromptFailed
)

// String returns the error type name.
func (t AppErrorType) String() string {
	switch t {
	case NoWorkspaceRoot:
		return "NoWorkspaceRoot"
	case InvalidFilename:
		return "InvalidFilename"
	case FileAlreadyExists:
		return "FileAlreadyExists"
	case ProjectRootNotFound:
		return "ProjectRootNotFound"
	case TemplateFailed:
		return "TemplateFailed"
	case WriteFailed:
		return "WriteFailed"
	case OpenFailed:
		return "OpenFailed"
	case ValidationFailed:
		return "ValidationFailed"
	case PromptFailed:
		return "PromptFailed"
	default:
		return fmt.Sprintf("AppErrorType(%d)", int(t))
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Stage is the stage of the create pipeline that failed.
	Stage Stage
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
func NewAppError(errType AppErrorType, stage Stage, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType AppErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}
