package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tacogips/csnew/internal/debug"
)

// ErrFileExists is returned when the destination is already occupied.
var ErrFileExists = errors.New("file already exists")

// linkFile is os.Link; replaced in tests.
var linkFile = os.Link

// Writer writes scaffolded files to the filesystem.
type Writer interface {
	// CreateFile writes content to a new file. It never replaces an existing
	// file: if path exists the error wraps ErrFileExists.
	CreateFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	mode os.FileMode
}

// NewFileWriter creates a new FileWriter. A zero mode means 0644.
func NewFileWriter(mode os.FileMode) Writer {
	if mode == 0 {
		mode = 0644
	}
	return &FileWriter{mode: mode}
}

// CreateFile writes content to a temporary file next to path and then links
// it into place. Linking fails if path exists, so a file created by someone
// else between the caller's existence check and this write is never replaced.
func (w *FileWriter) CreateFile(path string, content []byte) error {
	debug.Debug("[generator] Creating file: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorWriteFailed,
				"failed to create parent directory",
				path,
				err)
		}
	}

	if w.Exists(path) {
		return newGeneratorError(GeneratorFileExists, "refusing to overwrite", path, ErrFileExists)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create temporary file",
			path,
			err)
	}
	tempFile := f.Name()
	defer func() { _ = os.Remove(tempFile) }()

	_, err = f.Write(content)
	closeErr := f.Close()
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to write file content",
			path,
			err)
	}
	if closeErr != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to close file",
			path,
			closeErr)
	}

	if err := os.Chmod(tempFile, w.mode); err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to set file mode",
			path,
			err)
	}

	debug.Debug("[generator] Linking temporary file: %s -> %s", tempFile, path)
	if err := linkFile(tempFile, path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return newGeneratorError(GeneratorFileExists, "refusing to overwrite", path, ErrFileExists)
		}
		// FAT, exFAT and some network mounts have no hard links.
		debug.Debug("[generator] Link failed (%v), creating exclusively: %s", err, path)
		return w.createExclusive(path, content)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// createExclusive writes content to path with O_EXCL. A partially written
// file is removed on failure.
func (w *FileWriter) createExclusive(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, w.mode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return newGeneratorError(GeneratorFileExists, "refusing to overwrite", path, ErrFileExists)
		}
		return newGeneratorError(GeneratorWriteFailed, "failed to create file", path, err)
	}

	_, err = f.Write(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return newGeneratorError(GeneratorWriteFailed, "failed to write file content", path, err)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create directory",
			path,
			err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// WriteFiles creates each named file in dir. Existing files are skipped
// unless overwrite is set. It returns the paths written.
func WriteFiles(w Writer, dir string, files map[string][]byte, overwrite bool) ([]string, error) {
	if err := w.CreateDir(dir); err != nil {
		return nil, err
	}

	var written []string
	for _, name := range sortedKeys(files) {
		path := filepath.Join(dir, name)
		if w.Exists(path) {
			if !overwrite {
				debug.Debug("[generator] Skipping existing file: %s", path)
				continue
			}
			if err := os.Remove(path); err != nil {
				return written, newGeneratorError(GeneratorWriteFailed, "failed to replace file", path, err)
			}
		}
		if err := w.CreateFile(path, files[name]); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func sortedKeys(files map[string][]byte) []string {
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
