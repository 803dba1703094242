package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_CreateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Models", "Dto", "Order.cs")
	w := NewFileWriter(0)

	require.NoError(t, w.CreateFile(path, []byte("class Order {}")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class Order {}", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// no temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileWriter_CreateFile_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Order.cs")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))
	w := NewFileWriter(0)

	err := w.CreateFile(path, []byte("replacement"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileExists))

	var genErr *GeneratorError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, GeneratorFileExists, genErr.Type)
	assert.Equal(t, path, genErr.Path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
}

func TestFileWriter_Exists(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(0)

	assert.True(t, w.Exists(dir))
	assert.False(t, w.Exists(filepath.Join(dir, "missing.cs")))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	w := NewFileWriter(0)
	files := map[string][]byte{
		"Interface.tmpl": []byte("interface"),
		"Class.tmpl":     []byte("class"),
	}

	written, err := WriteFiles(w, dir, files, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "Class.tmpl"),
		filepath.Join(dir, "Interface.tmpl"),
	}, written)

	t.Run("existing files are skipped", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Class.tmpl"), []byte("custom"), 0644))
		require.NoError(t, os.Remove(filepath.Join(dir, "Interface.tmpl")))

		written, err := WriteFiles(w, dir, files, false)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "Interface.tmpl")}, written)

		content, err := os.ReadFile(filepath.Join(dir, "Class.tmpl"))
		require.NoError(t, err)
		assert.Equal(t, "custom", string(content))
	})

	t.Run("overwrite replaces", func(t *testing.T) {
		written, err := WriteFiles(w, dir, files, true)
		require.NoError(t, err)
		assert.Len(t, written, 2)

		content, err := os.ReadFile(filepath.Join(dir, "Class.tmpl"))
		require.NoError(t, err)
		assert.Equal(t, "class", string(content))
	})
}

func TestGeneratorError_Message(t *testing.T) {
	err := newGeneratorError(GeneratorWriteFailed, "failed to write file content", "/x/A.cs", errors.New("disk full"))
	assert.Equal(t, "failed to write file content /x/A.cs: disk full", err.Error())
	assert.Equal(t, "disk full", errors.Unwrap(err).Error())

	exists := newGeneratorError(GeneratorFileExists, "refusing to overwrite", "/x/A.cs", ErrFileExists)
	assert.Equal(t, "refusing to overwrite /x/A.cs: file already exists", exists.Error())
	assert.ErrorIs(t, exists, ErrFileExists)
}

// stubLink replaces the hard-link step for the duration of the test.
func stubLink(t *testing.T, fn func(oldname, newname string) error) {
	t.Helper()
	orig := linkFile
	linkFile = fn
	t.Cleanup(func() { linkFile = orig })
}

func TestFileWriter_CreateFile_WithoutHardLinks(t *testing.T) {
	stubLink(t, func(oldname, newname string) error {
		return &os.LinkError{Op: "link", Old: oldname, New: newname, Err: errors.New("operation not supported")}
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "Models", "Order.cs")
	w := NewFileWriter(0)

	require.NoError(t, w.CreateFile(path, []byte("class Order {}")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class Order {}", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileWriter_CreateFile_WithoutHardLinksNeverOverwrites(t *testing.T) {
	// The destination appears after the existence check, before the exclusive create.
	stubLink(t, func(oldname, newname string) error {
		if err := os.WriteFile(newname, []byte("theirs"), 0644); err != nil {
			return err
		}
		return &os.LinkError{Op: "link", Old: oldname, New: newname, Err: errors.New("operation not supported")}
	})

	path := filepath.Join(t.TempDir(), "Order.cs")
	err := NewFileWriter(0).CreateFile(path, []byte("ours"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileExists)

	var genErr *GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, GeneratorFileExists, genErr.Type)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theirs", string(content))
}
