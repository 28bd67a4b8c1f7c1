// Package storage persists progression counters as a small key-value set.
// Backends: in-memory (tests, ephemeral sessions), SQLite file (default),
// Redis (shared setups). The engine treats every write as fire-and-forget;
// in-memory engine state stays authoritative when a write fails.
package storage

import (
	"sync"
)

// Fixed keys of the persisted progression state
const (
	KeyXP           = "xp"
	KeyLevel        = "level"
	KeyXPNextAbs    = "xpNextAbs"
	KeyXPLevelStart = "xpLevelStart"
)

// Store is a durable integer key-value store
type Store interface {
	// GetInt returns the stored value; ok is false when the key is unset
	GetInt(key string) (value int, ok bool, err error)

	// PutInt stores the value, overwriting any previous one
	PutInt(key string, value int) error

	// Close releases backend resources. Idempotent
	Close() error
}

// MemoryStore is a process-local Store
// The zero value is not usable; construct with NewMemoryStore
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// GetInt implements Store
func (m *MemoryStore) GetInt(key string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// PutInt implements Store
func (m *MemoryStore) PutInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close implements Store
func (m *MemoryStore) Close() error {
	return nil
}
