package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// MemoryStore is an in-process Store for tests and headless runs.
type MemoryStore struct {
	mu    sync.Mutex
	lists map[string][]models.SavedJSON
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]models.SavedJSON)}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]models.SavedJSON, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneList(s.lists[key]), nil
}

// Set implements Store.
func (s *MemoryStore) Set(ctx context.Context, key string, list []models.SavedJSON) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, e := range list {
		if err := ValidateEntry(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = cloneList(list)
	return nil
}
