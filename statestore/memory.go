package statestore

import (
	"context"
	"sync"
)

// NewMemory creates an in-memory store. It is primarily intended for tests and for hosts that do not want the
// hidden-categories set to survive a restart.
func NewMemory() Store {
	return &memoryStore{}
}

type memoryStore struct {
	lock       sync.Mutex
	categories []string
}

func (s *memoryStore) Load(_ context.Context) ([]string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := make([]string, len(s.categories))
	copy(result, s.categories)
	return result, nil
}

func (s *memoryStore) Save(_ context.Context, categories []string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.categories = make([]string, len(categories))
	copy(s.categories, categories)
	return nil
}
