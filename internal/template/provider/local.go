package provider

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tacogips/csnew/internal/debug"
	"github.com/tacogips/csnew/internal/template/model"
)

// LocalProvider loads templates from a directory on disk. The directory is
// read on every Load, so edits to templates take effect immediately.
type LocalProvider struct {
	// Dir is the absolute template directory.
	Dir string
}

// NewLocalProvider creates a provider reading templates from dir.
func NewLocalProvider(dir string) (*LocalProvider, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewLoadError("local", dir, err)
	}
	return &LocalProvider{Dir: abs}, nil
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Load reads <Dir>/<template file for kind>.
func (p *LocalProvider) Load(ctx context.Context, kind model.FileKind) (*model.Template, error) {
	spec, err := model.SpecFor(kind)
	if err != nil {
		return nil, NewInvalidTemplateError(p.Name(), kind.String(), err.Error())
	}

	path := filepath.Join(p.Dir, spec.TemplateFile)
	debug.Debug("[local] Loading template: %s", path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[local] Template does not exist: %s", path)
			return nil, NewNotFoundError(p.Name(), path)
		}
		return nil, NewLoadError(p.Name(), path, err)
	}
	if info.IsDir() {
		return nil, NewInvalidTemplateError(p.Name(), path, "template path is a directory")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(p.Name(), path, err)
	}
	if len(body) == 0 {
		return nil, NewInvalidTemplateError(p.Name(), path, "template is empty")
	}

	debug.Debug("[local] Loaded %s (%d bytes)", path, len(body))
	return &model.Template{
		Kind:   kind,
		Name:   spec.TemplateFile,
		Source: path,
		Body:   string(body),
	}, nil
}
