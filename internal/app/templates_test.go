package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("writes built-in templates", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "templates")

		result, err := NewTemplates(ctx, NewTemplatesOptions{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "Class.tmpl"),
			filepath.Join(dir, "Interface.tmpl"),
		}, result.Files)
		assert.Empty(t, result.Skipped)

		body, err := os.ReadFile(filepath.Join(dir, "Interface.tmpl"))
		require.NoError(t, err)
		assert.Contains(t, string(body), "public interface ${classname}")
	})

	t.Run("keeps existing files without force", func(t *testing.T) {
		dir := t.TempDir()
		custom := writeFixture(t, dir, "Class.tmpl", "custom ${cursor}")

		result, err := NewTemplates(ctx, NewTemplatesOptions{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "Interface.tmpl")}, result.Files)
		assert.Equal(t, []string{custom}, result.Skipped)

		body, err := os.ReadFile(custom)
		require.NoError(t, err)
		assert.Equal(t, "custom ${cursor}", string(body))
	})

	t.Run("force replaces existing files", func(t *testing.T) {
		dir := t.TempDir()
		custom := writeFixture(t, dir, "Class.tmpl", "custom ${cursor}")

		result, err := NewTemplates(ctx, NewTemplatesOptions{Path: dir, Force: true})
		require.NoError(t, err)
		assert.Len(t, result.Files, 2)
		assert.Empty(t, result.Skipped)

		body, err := os.ReadFile(custom)
		require.NoError(t, err)
		assert.Contains(t, string(body), "public class ${classname}")
	})

	t.Run("target is a file", func(t *testing.T) {
		file := writeFixture(t, t.TempDir(), "templates", "")

		_, err := NewTemplates(ctx, NewTemplatesOptions{Path: file})
		assert.True(t, IsType(err, ValidationFailed))
	})
}

func TestCheckTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("exported templates are valid", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewTemplates(ctx, NewTemplatesOptions{Path: dir})
		require.NoError(t, err)

		result, err := CheckTemplates(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 2, result.FilesChecked)
		assert.Empty(t, result.Errors)
	})

	t.Run("reports problems", func(t *testing.T) {
		dir := t.TempDir()
		classPath := writeFixture(t, dir, "Class.tmpl", "namespace ${namespace}\n{\n    class ${className} {}\n}\n")

		result, err := CheckTemplates(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 1, result.FilesChecked)
		require.Len(t, result.Errors, 3)

		assert.Equal(t, classPath, result.Errors[0].File)
		assert.Equal(t, 3, result.Errors[0].Line)
		assert.Contains(t, result.Errors[0].Message, "${className}")

		assert.Equal(t, classPath, result.Errors[1].File)
		assert.Equal(t, 0, result.Errors[1].Line)
		assert.Contains(t, result.Errors[1].Message, "cursor")

		assert.Equal(t, filepath.Join(dir, "Interface.tmpl"), result.Errors[2].File)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := CheckTemplates(ctx, filepath.Join(t.TempDir(), "missing"))
		assert.True(t, IsType(err, ValidationFailed))
	})
}
