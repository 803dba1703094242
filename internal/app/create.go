package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/csnew/internal/debug"
	"github.com/tacogips/csnew/internal/project"
	"github.com/tacogips/csnew/internal/template/generator"
	"github.com/tacogips/csnew/internal/template/model"
	"github.com/tacogips/csnew/internal/template/provider"
	"github.com/tacogips/csnew/internal/template/render"
)

// ScaffolderOptions holds the collaborators of a Scaffolder.
type ScaffolderOptions struct {
	// TemplateDir is the directory holding Class.tmpl / Interface.tmpl.
	// Empty means the embedded templates.
	TemplateDir string
	// DescriptorName is the exact project descriptor file name.
	DescriptorName string
	// ProjectFilePattern is the glob for project files.
	ProjectFilePattern string
	// Prompter asks for the filename. Required.
	Prompter Prompter
	// Opener opens the created file. Nil means the file is not opened.
	Opener Opener
	// Writer creates files. Nil means a FileWriter with mode 0644.
	Writer generator.Writer
}

// Scaffolder creates new C# source files from templates.
// It holds no per-request state and may be shared.
type Scaffolder struct {
	locator   *project.Locator
	templates provider.Provider
	writer    generator.Writer
	prompter  Prompter
	opener    Opener
}

// NewScaffolder creates a Scaffolder.
func NewScaffolder(opts ScaffolderOptions) (*Scaffolder, error) {
	if opts.Prompter == nil {
		return nil, NewAppError(ValidationFailed, StagePrompting, "prompter is required", nil)
	}

	locator, err := project.NewLocator(opts.DescriptorName, opts.ProjectFilePattern)
	if err != nil {
		return nil, NewAppError(ValidationFailed, StagePrompting, "invalid project settings", err)
	}

	templates, err := provider.NewProvider(opts.TemplateDir)
	if err != nil {
		return nil, NewAppError(TemplateFailed, StageRendering, "failed to open template directory", err)
	}

	s := &Scaffolder{
		locator:   locator,
		templates: templates,
		writer:    opts.Writer,
		prompter:  opts.Prompter,
		opener:    opts.Opener,
	}
	if s.writer == nil {
		s.writer = generator.NewFileWriter(0)
	}
	if s.opener == nil {
		s.opener = nopOpener{}
	}
	return s, nil
}

// CreateOptions holds options for creating one file.
type CreateOptions struct {
	// Kind selects the template and prompt.
	Kind model.FileKind
	// SeedPath is the file or directory the command was invoked on, if any.
	SeedPath string
	// WorkspaceRoot is the directory typed filenames are relative to.
	WorkspaceRoot string
}

// CreateResult describes a created file.
type CreateResult struct {
	// Path is the absolute path of the created file.
	Path string
	// ClassName is the type name written into the file.
	ClassName string
	// Namespace is the namespace written into the file.
	Namespace string
	// Resolution is the namespace resolution for the file's directory.
	Resolution *project.Resolution
	// TemplateSource identifies the template that was rendered.
	TemplateSource string
	// Content is the file content.
	Content string
	// Cursor is the zero-based caret position in Content.
	Cursor render.Position
}

// CreateFile prompts for a filename and creates the file from the kind's
// template. It returns ErrCancelled if the prompt is dismissed.
//
// When the file was written but could not be opened, both the result and an
// OpenFailed error are returned.
func (s *Scaffolder) CreateFile(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	debug.DebugSection("[app] CreateFile workflow start")
	debug.DebugValue("[app] Kind", opts.Kind)
	debug.DebugValue("[app] Seed path", opts.SeedPath)
	debug.DebugValue("[app] Workspace root", opts.WorkspaceRoot)

	if opts.WorkspaceRoot == "" {
		return nil, NewAppError(NoWorkspaceRoot, StagePrompting,
			"a folder must be opened in the workspace to run this command", nil)
	}
	root, err := filepath.Abs(opts.WorkspaceRoot)
	if err != nil {
		return nil, NewAppError(NoWorkspaceRoot, StagePrompting, "failed to resolve workspace root", err)
	}

	spec, err := model.SpecFor(opts.Kind)
	if err != nil {
		return nil, NewAppError(ValidationFailed, StagePrompting, "unsupported file kind", err)
	}

	seedDir, err := seedDirectory(root, opts.SeedPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	promptOpts := DefaultPromptOptions(spec, seedDir, opts.SeedPath != "")
	debug.DebugValue("[app] Prompt default", promptOpts.Default)
	name, err := s.prompter.Prompt(ctx, promptOpts)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			debug.Debug("[app] Prompt cancelled")
			return nil, ErrCancelled
		}
		return nil, NewAppError(PromptFailed, StagePrompting, "failed to read filename", err)
	}

	// Stage: Validating
	if msg := ValidateFilename(name); msg != "" {
		return nil, NewAppError(InvalidFilename, StageValidating, msg, nil)
	}

	target := resolveTarget(root, name)
	debug.DebugValue("[app] Target path", target)
	if s.writer.Exists(target) {
		return nil, NewAppError(FileAlreadyExists, StageValidating,
			fmt.Sprintf("file already exists: %s", target), generator.ErrFileExists)
	}

	// Stage: ResolvingNamespace
	res, err := s.locator.Resolve(filepath.Dir(target))
	if err != nil {
		return nil, NewAppError(ProjectRootNotFound, StageResolvingNamespace, "unable to determine namespace", err)
	}

	// Stage: Rendering
	className := classNameOf(target)
	tmpl, err := s.templates.Load(ctx, opts.Kind)
	if err != nil {
		return nil, NewAppError(TemplateFailed, StageRendering, "failed to load template", err)
	}
	rendered, err := render.Render(tmpl.Body, className, res.Namespace)
	if err != nil {
		return nil, NewAppError(TemplateFailed, StageRendering,
			fmt.Sprintf("failed to render template %s", tmpl.Source), err)
	}

	// Stage: Writing
	if err := s.writer.CreateFile(target, []byte(rendered.Text)); err != nil {
		if errors.Is(err, generator.ErrFileExists) {
			return nil, NewAppError(FileAlreadyExists, StageWriting,
				fmt.Sprintf("file already exists: %s", target), err)
		}
		return nil, NewAppError(WriteFailed, StageWriting, "failed to write file", err)
	}

	result := &CreateResult{
		Path:           target,
		ClassName:      className,
		Namespace:      res.Namespace,
		Resolution:     res,
		TemplateSource: tmpl.Source,
		Content:        rendered.Text,
		Cursor:         rendered.Cursor,
	}

	if err := s.opener.Open(ctx, target, rendered.Cursor); err != nil {
		return result, NewAppError(OpenFailed, StageWriting, "file created but could not be opened", err)
	}

	debug.Debug("[app] CreateFile workflow completed: %s", target)
	return result, nil
}

// ResolveNamespace returns the namespace a file created at path would get.
// path may be a directory or a (possibly missing) file.
func (s *Scaffolder) ResolveNamespace(ctx context.Context, path string) (*project.Resolution, error) {
	debug.DebugSection("[app] ResolveNamespace workflow start")

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, NewAppError(ValidationFailed, StageResolvingNamespace, "failed to resolve path", err)
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	res, err := s.locator.Resolve(dir)
	if err != nil {
		return nil, NewAppError(ProjectRootNotFound, StageResolvingNamespace, "unable to determine namespace", err)
	}
	return res, nil
}

// seedDirectory returns the seed's directory relative to root. A seed that
// names a file contributes its parent directory.
func seedDirectory(root, seed string) (string, error) {
	if seed == "" {
		return "", nil
	}

	abs := seed
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}
	abs = filepath.Clean(abs)

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", NewAppError(ValidationFailed, StagePrompting,
			fmt.Sprintf("seed path %s is outside the workspace root %s", seed, root), err)
	}
	return rel, nil
}

func resolveTarget(root, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(root, name)
}

// classNameOf returns the file name without its extension.
func classNameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
