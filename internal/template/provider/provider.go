package provider

import (
	"context"

	"github.com/tacogips/csnew/internal/template/model"
)

// Provider abstracts where templates are loaded from (embedded defaults,
// a local template directory).
type Provider interface {
	// Load returns the template for kind.
	Load(ctx context.Context, kind model.FileKind) (*model.Template, error)

	// Name returns the provider name (e.g., "embedded", "local").
	Name() string
}
