// Package project locates the project that owns a source file and infers
// the namespace a new file in it should use.
package project

import (
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/tacogips/csnew/internal/debug"
)

// Default descriptor names.
const (
	// DefaultDescriptorName is the JSON project descriptor searched for first.
	DefaultDescriptorName = "project.json"
	// DefaultProjectFilePattern matches MSBuild project files, searched second.
	DefaultProjectFilePattern = "*.csproj"
)

// Descriptor is a located project descriptor.
type Descriptor struct {
	// RootDir is the absolute directory containing the descriptor.
	RootDir string
	// Path is the absolute path of the descriptor file.
	Path string
}

// Locator walks up the directory tree looking for a project descriptor.
// A Locator holds no per-request state and is safe for concurrent use.
type Locator struct {
	descriptorName string
	pattern        string
	projectFile    glob.Glob
}

// NewLocator creates a Locator. Empty arguments select the defaults.
func NewLocator(descriptorName, projectFilePattern string) (*Locator, error) {
	if descriptorName == "" {
		descriptorName = DefaultDescriptorName
	}
	if projectFilePattern == "" {
		projectFilePattern = DefaultProjectFilePattern
	}

	g, err := glob.Compile(projectFilePattern)
	if err != nil {
		return nil, newProjectError(InvalidPattern, "invalid project file pattern", projectFilePattern, err)
	}

	return &Locator{
		descriptorName: descriptorName,
		pattern:        projectFilePattern,
		projectFile:    g,
	}, nil
}

// Locate finds the nearest descriptor at or above startDir. The exact
// descriptor name is searched all the way to the filesystem root first; only
// when that fails is the project-file pattern searched, again from startDir.
func (l *Locator) Locate(startDir string) (*Descriptor, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, newProjectError(RootNotFound, "failed to resolve start directory", startDir, err)
	}
	abs = filepath.Clean(abs)

	debug.Debug("[project] Locate: start=%s descriptor=%s pattern=%s", abs, l.descriptorName, l.pattern)

	if d, ok := walkUp(abs, l.matchDescriptorName); ok {
		debug.Debug("[project] Found descriptor by name: %s", d.Path)
		return d, nil
	}

	if d, ok := walkUp(abs, l.matchProjectFile); ok {
		debug.Debug("[project] Found descriptor by pattern: %s", d.Path)
		return d, nil
	}

	debug.Debug("[project] No descriptor found above %s", abs)
	return nil, newProjectError(RootNotFound, "no project descriptor found", abs, ErrProjectRootNotFound)
}

// walkUp calls match on dir and each of its ancestors until it reports a hit.
func walkUp(dir string, match func(dir string) (string, bool)) (*Descriptor, bool) {
	for {
		if path, ok := match(dir); ok {
			return &Descriptor{RootDir: dir, Path: path}, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, false
		}
		dir = parent
	}
}

func (l *Locator) matchDescriptorName(dir string) (string, bool) {
	path := filepath.Join(dir, l.descriptorName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// matchProjectFile returns the first regular file in dir, by name, matching
// the pattern. Unreadable or missing directories simply do not match.
func (l *Locator) matchProjectFile(dir string) (string, bool) {
	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if l.projectFile.Match(entry.Name()) {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}
