package generator

import "fmt"

// GeneratorErrorType categorizes file write failures.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates the file or its directory could not be written.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorFileExists indicates the destination is already occupied.
	GeneratorFileExists
)

// GeneratorError reports a failed write of one destination path.
type GeneratorError struct {
	Type    GeneratorErrorType
	Message string
	// Path is the destination being written.
	Path  string
	Cause error
}

// Error formats as "<message> <path>: <cause>".
func (e *GeneratorError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Message, e.Path, e.Cause)
}

// Unwrap returns the cause, ErrFileExists for GeneratorFileExists.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

func newGeneratorError(typ GeneratorErrorType, message, path string, cause error) *GeneratorError {
	return &GeneratorError{Type: typ, Message: message, Path: path, Cause: cause}
}
