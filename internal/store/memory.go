package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local KV used for tests and ephemeral sessions.
type MemoryStore struct {
	mu     sync.RWMutex
	slots  map[string]string
	closed bool
}

var _ KV = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory slot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

// Read returns the value held for key.
func (s *MemoryStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.slots[key]
	return v, ok, nil
}

// Write sets the value held for key.
func (s *MemoryStore) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.slots[key] = value
	return nil
}

// Close marks the store closed; later reads and writes fail with ErrClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
