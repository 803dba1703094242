package project

import (
	"errors"
	"fmt"
)

// ErrProjectRootNotFound is returned when no project descriptor exists between
// the start directory and the filesystem root.
var ErrProjectRootNotFound = errors.New("project root not found")

// ErrEmptyDescriptor is returned when the located descriptor file has no content.
var ErrEmptyDescriptor = errors.New("project descriptor is empty")

// ProjectErrorType represents the type of project resolution error.
type ProjectErrorType int

const (
	// RootNotFound indicates no descriptor was found walking upward.
	RootNotFound ProjectErrorType = iota
	// OutsideRoot indicates a target directory is not inside the project root.
	OutsideRoot
	// InvalidPattern indicates the project-file glob could not be compiled.
	InvalidPattern
	// EmptyDescriptor indicates the located descriptor file is zero bytes.
	EmptyDescriptor
)

// ProjectError represents a project resolution error.
type ProjectError struct {
	// Type is the error type.
	Type ProjectErrorType
	// Message is the error message.
	Message string
	// Path is the directory or pattern the error relates to.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
}

// Unwrap returns the underlying cause.
func (e *ProjectError) Unwrap() error {
	return e.Cause
}

func newProjectError(typ ProjectErrorType, message, path string, cause error) *ProjectError {
	return &ProjectError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
