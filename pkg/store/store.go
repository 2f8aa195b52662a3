// Package store provides the durable key-value storage behind the wallet
// session. The session only ever reads and writes a single key (the last
// connected adapter id), but the storage side effects live behind this
// interface so session logic stays testable without a real database.
package store

import "sync"

// Store is a minimal durable key-value store.
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)

	// Set writes the value for key
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error
	Delete(key string) error

	// Close releases the underlying resources
	Close() error
}

// MemStore is an in-memory Store. It is the test double for BadgerStore
// and is safe for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get implements Store
func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete implements Store
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close implements Store
func (s *MemStore) Close() error {
	return nil
}
