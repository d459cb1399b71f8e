package store

import (
	"context"
	"fmt"
	"sync"

	"fishmart/internal/port"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns a Store backed by a plain map. It is the test
// double and the default backend for a single-process storefront.
func NewMemory() port.Store {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(value))
	copy(out, value)

	return out, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
