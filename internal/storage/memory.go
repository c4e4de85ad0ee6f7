package storage

import (
	"sync"

	"github.com/vovakirdan/startpage-snake/internal/core"
)

// MemoryKV is an in-process key-value store. The platform falls back to it
// when the database cannot be opened, so a run still tracks its high score.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]int
}

var _ core.KeyValueStore = (*MemoryKV)(nil)

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]int)}
}

// GetInt returns the value stored under key and whether it was present.
func (m *MemoryKV) GetInt(key string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// SetInt stores value under key.
func (m *MemoryKV) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
