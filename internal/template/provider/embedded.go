package provider

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"

	"github.com/tacogips/csnew/internal/debug"
	"github.com/tacogips/csnew/internal/template/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const embeddedRoot = "templates"

// EmbeddedProvider serves the templates compiled into the binary.
type EmbeddedProvider struct{}

// NewEmbeddedProvider creates a provider for the built-in templates.
func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{}
}

// Name returns the provider name.
func (p *EmbeddedProvider) Name() string {
	return "embedded"
}

// Load returns the built-in template for kind.
func (p *EmbeddedProvider) Load(ctx context.Context, kind model.FileKind) (*model.Template, error) {
	spec, err := model.SpecFor(kind)
	if err != nil {
		return nil, NewInvalidTemplateError(p.Name(), kind.String(), err.Error())
	}

	name := path.Join(embeddedRoot, spec.TemplateFile)
	debug.Debug("[embedded] Loading %s", name)

	body, err := templatesFS.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(p.Name(), name)
		}
		return nil, NewLoadError(p.Name(), name, err)
	}

	return &model.Template{
		Kind:   kind,
		Name:   spec.TemplateFile,
		Source: "embedded:" + spec.TemplateFile,
		Body:   string(body),
	}, nil
}

// DefaultTemplates returns every built-in template keyed by file name.
func DefaultTemplates() (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, kind := range model.AllKinds() {
		spec, err := model.SpecFor(kind)
		if err != nil {
			return nil, err
		}
		body, err := templatesFS.ReadFile(path.Join(embeddedRoot, spec.TemplateFile))
		if err != nil {
			return nil, err
		}
		out[spec.TemplateFile] = body
	}
	return out, nil
}
