package driven

import (
	"context"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// DropStore persists the history of accepted drops.
type DropStore interface {
	// Save records a drop.
	Save(ctx context.Context, drop domain.Drop) error

	// Get retrieves a drop by ID.
	Get(ctx context.Context, id string) (*domain.Drop, error)

	// List returns up to limit drops, newest first.
	// A limit of zero or less returns every drop.
	List(ctx context.Context, limit int) ([]domain.Drop, error)
}
