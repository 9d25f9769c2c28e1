// Package memstore is an in-process store.Store. It backs tests and
// ephemeral sessions that should not touch the disk.
package memstore

import (
	"fmt"
	"sync"

	"github.com/idilsaglam/recipebox/internal/store"
)

var _ store.Store = (*Store)(nil)

// Store keeps values in a map. A positive capacity caps the total number
// of value bytes held, like a browser's local storage quota.
type Store struct {
	mu       sync.RWMutex
	values   map[string]string
	capacity int

	// FailWith, when set, is returned from every Set.
	FailWith error
}

// New returns an empty store. capacity <= 0 means unlimited.
func New(capacity int) *Store {
	return &Store{values: make(map[string]string), capacity: capacity}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	if s.capacity > 0 {
		used := len(value)
		for k, v := range s.values {
			if k != key {
				used += len(v)
			}
		}
		if used > s.capacity {
			return fmt.Errorf("set %q: %d bytes over %d: %w", key, used, s.capacity, store.ErrQuotaExceeded)
		}
	}
	s.values[key] = value
	return nil
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
