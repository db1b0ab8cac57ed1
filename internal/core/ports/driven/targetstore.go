package driven

import (
	"context"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// TargetStore persists scan targets keyed by path.
type TargetStore interface {
	// Save stores or updates a target.
	Save(ctx context.Context, target domain.Target) error

	// Get retrieves a target by path.
	// Returns domain.ErrNotFound if the path is not a target.
	Get(ctx context.Context, path string) (*domain.Target, error)

	// Delete removes a target. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error

	// List returns all targets sorted by path.
	List(ctx context.Context) ([]domain.Target, error)
}
