package storage

import (
	"context"
	"sync"
)

// MemoryBlobs keeps values in a map. Nothing survives the process.
type MemoryBlobs struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryBlobs returns an empty in-memory backend.
func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{data: make(map[string][]byte)}
}

// Get returns a copy of the value for key.
func (m *MemoryBlobs) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of data under key.
func (m *MemoryBlobs) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// Close is a no-op.
func (m *MemoryBlobs) Close() error { return nil }
