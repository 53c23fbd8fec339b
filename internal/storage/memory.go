package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps snapshots in a map. Used for tests and demo runs where
// persistence across restarts does not matter.
type MemoryBackend struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		snapshots: make(map[string][]byte),
	}
}

func (m *MemoryBackend) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.snapshots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryBackend) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.snapshots[key] = stored
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
