package project

import (
	"path/filepath"
	"strings"
)

// NamespaceSeparator joins namespace segments.
const NamespaceSeparator = "."

// Segments returns the directory names between projectRootDir and targetDir.
// It is empty when the two are the same directory, and an error when
// targetDir is not inside projectRootDir.
func Segments(projectRootDir, targetDir string) ([]string, error) {
	rel, err := filepath.Rel(filepath.Clean(projectRootDir), filepath.Clean(targetDir))
	if err != nil {
		return nil, newProjectError(OutsideRoot, "cannot relate target to project root", targetDir, err)
	}
	if rel == "." {
		return nil, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, newProjectError(OutsideRoot, "target directory is outside the project root "+projectRootDir, targetDir, nil)
	}
	return strings.Split(rel, string(filepath.Separator)), nil
}

// Compose builds the namespace for a file in targetDir: rootNamespace followed
// by one dot-separated segment per directory below projectRootDir.
func Compose(rootNamespace, projectRootDir, targetDir string) (string, error) {
	segments, err := Segments(projectRootDir, targetDir)
	if err != nil {
		return "", err
	}
	return join(rootNamespace, segments), nil
}

func join(rootNamespace string, segments []string) string {
	if len(segments) == 0 {
		return rootNamespace
	}
	return rootNamespace + NamespaceSeparator + strings.Join(segments, NamespaceSeparator)
}
