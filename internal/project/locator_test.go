package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_JSONDescriptorInStartDir(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "App/project.json", `{}`)

	d, err := defaultLocator(t).Locate(filepath.Join(root, "App"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "App"), d.RootDir)
	assert.Equal(t, path, d.Path)
}

func TestLocate_WalksUpward(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "App/App.csproj", `<Project />`)
	start := mkdir(t, root, "App/Models/Dto")

	d, err := defaultLocator(t).Locate(start)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "App"), d.RootDir)
	assert.Equal(t, path, d.Path)
}

func TestLocate_NearestDirectoryWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Outer/Outer.csproj", `<Project />`)
	inner := writeFile(t, root, "Outer/Inner/Inner.csproj", `<Project />`)
	start := mkdir(t, root, "Outer/Inner/Sub")

	d, err := defaultLocator(t).Locate(start)
	require.NoError(t, err)
	assert.Equal(t, inner, d.Path)
}

func TestLocate_JSONSearchTakesPrecedenceOverNearerProjectFile(t *testing.T) {
	root := t.TempDir()
	jsonPath := writeFile(t, root, "Outer/project.json", `{}`)
	writeFile(t, root, "Outer/Inner/Inner.csproj", `<Project />`)
	start := mkdir(t, root, "Outer/Inner/Sub")

	d, err := defaultLocator(t).Locate(start)
	require.NoError(t, err)
	assert.Equal(t, jsonPath, d.Path)
	assert.Equal(t, filepath.Join(root, "Outer"), d.RootDir)
}

func TestLocate_FirstProjectFileByName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "App/Zeta.csproj", `<Project />`)
	alpha := writeFile(t, root, "App/Alpha.csproj", `<Project />`)

	d, err := defaultLocator(t).Locate(filepath.Join(root, "App"))
	require.NoError(t, err)
	assert.Equal(t, alpha, d.Path)
}

func TestLocate_IgnoresDirectoriesMatchingNames(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "App/project.json")
	mkdir(t, root, "App/Fake.csproj")
	projectFile := writeFile(t, root, "App.csproj", `<Project />`)

	d, err := defaultLocator(t).Locate(filepath.Join(root, "App"))
	require.NoError(t, err)
	assert.Equal(t, projectFile, d.Path)
}

func TestLocate_MissingStartDirectory(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "App/App.csproj", `<Project />`)

	d, err := defaultLocator(t).Locate(filepath.Join(root, "App", "Not", "Yet", "Created"))
	require.NoError(t, err)
	assert.Equal(t, path, d.Path)
}

func TestLocate_NotFound(t *testing.T) {
	// Assumes no project descriptor exists above the temp directory.
	root := t.TempDir()
	start := mkdir(t, root, "a/b")

	d, err := defaultLocator(t).Locate(start)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrProjectRootNotFound))

	var projErr *ProjectError
	require.True(t, errors.As(err, &projErr))
	assert.Equal(t, RootNotFound, projErr.Type)
}

func TestLocate_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "App/App.csproj", `<Project />`)
	start := mkdir(t, root, "App/Services")
	l := defaultLocator(t)

	first, err := l.Locate(start)
	require.NoError(t, err)
	second, err := l.Locate(start)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLocate_CustomNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Lib/Lib.csproj", `<Project />`)
	vb := writeFile(t, root, "Lib/Lib.vbproj", `<Project />`)

	l, err := NewLocator("workspace.json", "*.vbproj")
	require.NoError(t, err)

	d, err := l.Locate(filepath.Join(root, "Lib"))
	require.NoError(t, err)
	assert.Equal(t, vb, d.Path)
}

func TestNewLocator_InvalidPattern(t *testing.T) {
	_, err := NewLocator("", "[unterminated")
	require.Error(t, err)

	var projErr *ProjectError
	require.True(t, errors.As(err, &projErr))
	assert.Equal(t, InvalidPattern, projErr.Type)
}
