package project

import (
	"os"
	"path/filepath"

	"github.com/tacogips/csnew/internal/debug"
)

// Resolution is the namespace inferred for one target directory.
type Resolution struct {
	// Descriptor is the project descriptor that owns the target directory.
	Descriptor *Descriptor
	// RootNamespace is the declared or directory-derived root namespace.
	RootNamespace string
	// Declared reports whether RootNamespace came from the descriptor.
	Declared bool
	// TrailingSegments are the directories between the project root and the target.
	TrailingSegments []string
	// Namespace is the fully qualified namespace.
	Namespace string
}

// Resolve locates the project owning targetDir and composes its namespace.
// Nothing is cached: every call re-reads the filesystem. A zero-byte
// descriptor is an error.
func (l *Locator) Resolve(targetDir string) (*Resolution, error) {
	debug.DebugSection("[project] Resolve namespace")
	debug.DebugValue("[project] Target directory", targetDir)

	d, err := l.Locate(targetDir)
	if err != nil {
		return nil, err
	}

	// An empty descriptor fails resolution; unreadable ones fall back below.
	if info, err := os.Stat(d.Path); err == nil && info.Size() == 0 {
		debug.Debug("[project] Descriptor is empty: %s", d.Path)
		return nil, newProjectError(EmptyDescriptor, "project descriptor is empty", d.Path, ErrEmptyDescriptor)
	}

	root, declared := RootNamespace(d)
	debug.DebugValue("[project] Root namespace", root)
	debug.DebugValue("[project] Declared", declared)

	segments, err := Segments(d.RootDir, absOrSelf(targetDir))
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Descriptor:       d,
		RootNamespace:    root,
		Declared:         declared,
		TrailingSegments: segments,
		Namespace:        join(root, segments),
	}
	debug.DebugValue("[project] Namespace", res.Namespace)
	return res, nil
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
