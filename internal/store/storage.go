// Package store implements the device-local persistence layer for trip
// entities: the trip-info singleton, places, expenses, shopping items,
// place tags, favorite phrases, and currency settings.
//
// Every collection lives under one key as a single JSON value, and every
// mutation rewrites the whole collection. Reads never fail: a missing or
// unparseable value resolves to the collection's default, so a corrupted
// device store can never crash the UI.
package store

import "sync"

// Storage is the key-value persistence capability the store writes through.
// It mirrors the localStorage contract: Get returns the stored string and
// whether the key exists; Set unconditionally overwrites. Implementations
// must absorb their own failures — Set has no error return because callers
// have no recovery path beyond carrying on with in-memory state.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStorage is an in-memory Storage, used in tests and as the fallback
// when no durable location is available. Safe for concurrent use.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value stored under key and whether it exists.
func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, overwriting any previous value.
func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
