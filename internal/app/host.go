package app

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tacogips/csnew/internal/template/model"
	"github.com/tacogips/csnew/internal/template/render"
)

// Selection is a half-open character range [Start, End) within a prompt's default value.
type Selection struct {
	Start int
	End   int
}

// PromptOptions configures the filename prompt.
type PromptOptions struct {
	// Message is shown above the input.
	Message string
	// Placeholder is shown while the input is empty.
	Placeholder string
	// Default pre-fills the input.
	Default string
	// Selection is the part of Default that starts selected.
	Selection Selection
	// Validate returns a message for invalid input, or "" when valid.
	// Prompters call it on every change and refuse to confirm invalid input.
	Validate func(string) string
}

// Prompter asks the user for a filename. It returns ErrCancelled when the
// user dismisses the prompt.
type Prompter interface {
	Prompt(ctx context.Context, opts PromptOptions) (string, error)
}

// Opener opens a created file and places the cursor.
type Opener interface {
	Open(ctx context.Context, path string, cursor render.Position) error
}

// StaticPrompter answers every prompt with a fixed value. An empty Value
// accepts the prompt's default.
type StaticPrompter struct {
	Value string
}

// Prompt returns the fixed value.
func (p StaticPrompter) Prompt(ctx context.Context, opts PromptOptions) (string, error) {
	if p.Value == "" {
		return opts.Default, nil
	}
	return p.Value, nil
}

type nopOpener struct{}

func (nopOpener) Open(context.Context, string, render.Position) error { return nil }

// DefaultPromptOptions builds the prompt for spec. With a seed directory
// (relative to the workspace root) the default is seedDir/<default filename>
// with the file name selected; without one it is the bare default filename
// with its stem selected.
func DefaultPromptOptions(spec model.KindSpec, seedDir string, hasSeed bool) PromptOptions {
	opts := PromptOptions{
		Message:     spec.Prompt,
		Placeholder: spec.Placeholder,
		Validate:    ValidateFilename,
	}

	if !hasSeed {
		opts.Default = spec.DefaultFilename
		opts.Selection = Selection{Start: 0, End: utf8.RuneCountInString(spec.DefaultStem())}
		return opts
	}

	value := filepath.Join(seedDir, spec.DefaultFilename)
	nameStart := strings.LastIndex(value, string(filepath.Separator)) + 1
	opts.Default = value
	opts.Selection = Selection{
		Start: utf8.RuneCountInString(value[:nameStart]),
		End:   utf8.RuneCountInString(value),
	}
	return opts
}
