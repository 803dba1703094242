package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tacogips/csnew/internal/debug"
	"github.com/tacogips/csnew/internal/template/generator"
	"github.com/tacogips/csnew/internal/template/model"
	"github.com/tacogips/csnew/internal/template/provider"
	"github.com/tacogips/csnew/internal/template/render"
)

// NewTemplatesOptions holds options for exporting the built-in templates.
type NewTemplatesOptions struct {
	// Path is the destination directory.
	Path string
	// Force overwrites existing template files if true.
	Force bool
}

// NewTemplatesResult holds the result of a template export.
type NewTemplatesResult struct {
	// Path is the absolute destination directory.
	Path string
	// Files are the template files written.
	Files []string
	// Skipped are existing files left untouched.
	Skipped []string
}

// NewTemplates writes the built-in templates to a directory so they can be
// customised and used through the templates.directory setting.
func NewTemplates(ctx context.Context, opts NewTemplatesOptions) (*NewTemplatesResult, error) {
	debug.DebugSection("[app] NewTemplates workflow start")
	debug.DebugValue("[app] Target path", opts.Path)
	debug.DebugValue("[app] Force overwrite", opts.Force)

	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, NewAppError(ValidationFailed, StageWriting, "failed to resolve target path", err)
	}
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		return nil, NewAppError(ValidationFailed, StageWriting, "target path exists and is not a directory: "+absPath, nil)
	}

	files, err := provider.DefaultTemplates()
	if err != nil {
		return nil, NewAppError(TemplateFailed, StageRendering, "failed to read built-in templates", err)
	}

	written, err := generator.WriteFiles(generator.NewFileWriter(0), absPath, files, opts.Force)
	if err != nil {
		return nil, NewAppError(WriteFailed, StageWriting, "failed to write templates", err)
	}

	result := &NewTemplatesResult{Path: absPath, Files: written}
	for _, name := range sortedNames(files) {
		p := filepath.Join(absPath, name)
		if !slices.Contains(written, p) {
			result.Skipped = append(result.Skipped, p)
		}
	}

	debug.Debug("[app] NewTemplates workflow completed: %d written, %d skipped", len(result.Files), len(result.Skipped))
	return result, nil
}

// CheckTemplatesResult holds the result of checking a template directory.
type CheckTemplatesResult struct {
	// FilesChecked is the number of templates found and checked.
	FilesChecked int
	// Errors lists every problem found.
	Errors []CheckError
}

// CheckError is one problem in a template file.
type CheckError struct {
	// File is the template path.
	File string
	// Line is the 1-based line number, 0 if not applicable.
	Line int
	// Message is the error message.
	Message string
}

// CheckTemplates verifies that dir holds a usable template for every file
// kind: each must exist, contain a cursor marker and use only known tokens.
func CheckTemplates(ctx context.Context, dir string) (*CheckTemplatesResult, error) {
	debug.DebugSection("[app] CheckTemplates workflow start")
	debug.DebugValue("[app] Directory", dir)

	local, err := provider.NewLocalProvider(dir)
	if err != nil {
		return nil, NewAppError(ValidationFailed, StageRendering, "failed to resolve template directory", err)
	}
	if info, err := os.Stat(local.Dir); err != nil || !info.IsDir() {
		return nil, NewAppError(ValidationFailed, StageRendering, "template directory not found: "+local.Dir, err)
	}

	result := &CheckTemplatesResult{}
	for _, kind := range model.AllKinds() {
		spec, err := model.SpecFor(kind)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(local.Dir, spec.TemplateFile)

		tmpl, err := local.Load(ctx, kind)
		if err != nil {
			result.Errors = append(result.Errors, CheckError{File: path, Message: err.Error()})
			continue
		}
		result.FilesChecked++

		for _, problem := range render.Check(tmpl.Body) {
			ce := CheckError{File: path, Message: problem.Error()}
			var renderErr *render.RenderError
			if errors.As(problem, &renderErr) {
				ce.Message = fmt.Sprintf("%s: %s", renderErr.Message, renderErr.Token)
				if renderErr.Line >= 0 {
					ce.Line = renderErr.Line + 1
				}
			}
			result.Errors = append(result.Errors, ce)
		}
	}

	debug.Debug("[app] CheckTemplates completed: %d checked, %d errors", result.FilesChecked, len(result.Errors))
	return result, nil
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for _, kind := range model.AllKinds() {
		if spec, err := model.SpecFor(kind); err == nil {
			if _, ok := files[spec.TemplateFile]; ok {
				names = append(names, spec.TemplateFile)
			}
		}
	}
	return names
}
