package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process SnapshotStore for tests and --ephemeral runs.
// Nothing survives the process.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load devuelve el snapshot bajo la clave, o (nil, nil) si no existe.
func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// Save guarda una copia del snapshot bajo la clave.
func (m *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

// Close no hace nada; existe para cumplir la interfaz.
func (m *MemoryStore) Close() error { return nil }
