package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// fileExt is appended to each key to form its file name.
const fileExt = ".json"

// FileBlobs stores each key as its own file in a directory. Writes go to a
// temporary file that is renamed into place, so readers never see a partial
// value.
type FileBlobs struct {
	dir    string
	logger *zap.Logger
}

// NewFileBlobs creates dir if needed and returns a backend rooted there.
func NewFileBlobs(dir string, logger *zap.Logger) (*FileBlobs, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: file backend needs a directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileBlobs{dir: dir, logger: logger}, nil
}

// Dir returns the directory the backend writes into.
func (f *FileBlobs) Dir() string { return f.dir }

// Path returns the file that holds key.
func (f *FileBlobs) Path(key string) string {
	return filepath.Join(f.dir, key+fileExt)
}

// KeyForPath maps a file path back to its key. It reports false for paths
// that are not value files of this backend, including in-flight temp files.
func (f *FileBlobs) KeyForPath(path string) (string, bool) {
	if filepath.Dir(path) != filepath.Clean(f.dir) {
		return "", false
	}
	base := filepath.Base(path)
	if !strings.HasSuffix(base, fileExt) {
		return "", false
	}
	return strings.TrimSuffix(base, fileExt), true
}

// Get reads the value for key.
func (f *FileBlobs) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: read %q: %w", key, err)
	}
	return data, true, nil
}

// Put writes the value for key atomically (write temp + rename).
func (f *FileBlobs) Put(_ context.Context, key string, data []byte) error {
	path := f.Path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: rename temp file for %q: %w", key, err)
	}
	f.logger.Debug("blob written", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Close is a no-op; the file backend holds no open handles.
func (f *FileBlobs) Close() error { return nil }
