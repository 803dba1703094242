package app

import "fmt"

// Stage is a step of the create pipeline.
type Stage int

const (
	// StagePrompting asks the user for a filename.
	StagePrompting Stage = iota
	// StageValidating checks the filename and the target path.
	StageValidating
	// StageResolvingNamespace locates the project root and composes the namespace.
	StageResolvingNamespace
	// StageRendering loads and renders the template.
	StageRendering
	// StageWriting creates the file and opens it.
	StageWriting
	// StageDone means the file was created.
	StageDone
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StagePrompting:
		return "Prompting"
	case StageValidating:
		return "Validating"
	case StageResolvingNamespace:
		return "ResolvingNamespace"
	case StageRendering:
		return "Rendering"
	case StageWriting:
		return "Writing"
	case StageDone:
		return "Done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}
