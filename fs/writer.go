// Package fs provides file-based content loading and build output.
package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/limegreen-studio/studio"
)

// Ensure Writer implements studio.OutputWriter at compile time.
var _ studio.OutputWriter = (*Writer)(nil)

// Writer writes build output files below a base directory.
// Files whose content is unchanged are left untouched, so their
// modification times survive rebuilds.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteFile writes data to path, relative to the base directory.
// It reports false when the existing file already holds the same content.
func (w *Writer) WriteFile(ctx context.Context, path string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !filepath.IsLocal(path) {
		return false, studio.Errorf(studio.EINVALID, "output path %q escapes the output directory", path)
	}

	fullPath := filepath.Join(w.baseDir, path)

	if unchanged(fullPath, data) {
		return false, nil
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// unchanged reports whether the file at path already holds data. Files of
// another size are not read.
func unchanged(path string, data []byte) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() != int64(len(data)) {
		return false
	}
	existing, err := os.ReadFile(path)
	return err == nil && bytes.Equal(existing, data)
}
