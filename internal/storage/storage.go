// Package storage provides keyed blob persistence backends. Each backend stores
// opaque byte slices under string keys and knows nothing about their contents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Blobs reads and writes whole values by key. Get reports ok=false, with a nil
// error, when the key has never been written.
type Blobs interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Dir is the data directory. The file backend writes into it directly; the
	// sqlite and badger backends keep their files underneath it.
	Dir    string
	Logger *zap.Logger
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendBadger, BackendMemory}
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Blobs, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("backend", opts.Backend))

	switch opts.Backend {
	case BackendFile:
		return NewFileBlobs(opts.Dir, logger)
	case BackendSQLite:
		return NewSQLiteBlobs(ctx, filepath.Join(opts.Dir, "progress.db"), logger)
	case BackendBadger:
		return NewBadgerBlobs(BadgerConfig{Dir: filepath.Join(opts.Dir, "badger"), Logger: logger})
	case BackendMemory:
		return NewMemoryBlobs(), nil
	default:
		return nil, fmt.Errorf("%q: %w", opts.Backend, ErrUnknownBackend)
	}
}
