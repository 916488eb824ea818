package storage

import (
	"errors"
	"sync"

	"github.com/vovakirdan/skydive/internal/systems"
)

var errClosed = errors.New("storage: store is closed")

// MemoryKV is a process-local KeyValueStorage. Values are lost on exit.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]int)}
}

// GetInt returns the value for key, or def if it has never been set.
func (m *MemoryKV) GetInt(key string, def int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// PutInt stores value under key.
func (m *MemoryKV) PutInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Clear removes every key.
func (m *MemoryKV) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.values)
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}

var _ systems.KeyValueStorage = (*MemoryKV)(nil)
