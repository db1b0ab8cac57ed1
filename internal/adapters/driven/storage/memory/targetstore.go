package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
)

// Ensure TargetStore implements the interface.
var _ driven.TargetStore = (*TargetStore)(nil)

// TargetStore is an in-memory implementation of driven.TargetStore.
type TargetStore struct {
	mu      sync.RWMutex
	targets map[string]domain.Target
}

// NewTargetStore creates a new in-memory target store.
func NewTargetStore() *TargetStore {
	return &TargetStore{
		targets: make(map[string]domain.Target),
	}
}

// Save stores or updates a target.
func (s *TargetStore) Save(_ context.Context, target domain.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets[target.Path] = target
	return nil
}

// Get retrieves a target by path.
func (s *TargetStore) Get(_ context.Context, path string) (*domain.Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	target, ok := s.targets[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &target, nil
}

// Delete removes a target.
func (s *TargetStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.targets, path)
	return nil
}

// List returns all targets sorted by path.
func (s *TargetStore) List(_ context.Context) ([]domain.Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Target, 0, len(s.targets))
	for _, target := range s.targets {
		result = append(result, target)
	}
	domain.SortTargets(result)
	return result, nil
}
