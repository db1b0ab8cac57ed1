package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
)

// Ensure DropStore implements the interface.
var _ driven.DropStore = (*DropStore)(nil)

// DropStore is an in-memory implementation of driven.DropStore.
// Drops are kept in insertion order.
type DropStore struct {
	mu    sync.RWMutex
	drops []domain.Drop
}

// NewDropStore creates a new in-memory drop store.
func NewDropStore() *DropStore {
	return &DropStore{}
}

// Save records a drop. Saving an existing ID replaces it in place.
func (s *DropStore) Save(_ context.Context, drop domain.Drop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop = cloneDrop(drop)
	for i := range s.drops {
		if s.drops[i].ID == drop.ID {
			s.drops[i] = drop
			return nil
		}
	}
	s.drops = append(s.drops, drop)
	return nil
}

// Get retrieves a drop by ID.
func (s *DropStore) Get(_ context.Context, id string) (*domain.Drop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.drops {
		if s.drops[i].ID == id {
			drop := cloneDrop(s.drops[i])
			return &drop, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns up to limit drops, newest first.
func (s *DropStore) List(_ context.Context, limit int) ([]domain.Drop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.drops)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.Drop, 0, n)
	for i := len(s.drops) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, cloneDrop(s.drops[i]))
	}
	return result, nil
}

func cloneDrop(d domain.Drop) domain.Drop {
	d.URLs = append([]string(nil), d.URLs...)
	d.Paths = append([]string(nil), d.Paths...)
	return d
}
