package driving

import (
	"context"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// TargetService manages the ordered, de-duplicated list of scan targets.
type TargetService interface {
	// AddTargets adds every path not already present.
	// Returns how many targets were added.
	AddTargets(ctx context.Context, paths []string) (int, error)

	// List returns all targets sorted by path.
	List(ctx context.Context) ([]domain.Target, error)

	// Remove deletes a target.
	Remove(ctx context.Context, path string) error

	// ChangePath moves a target to a new path, keeping its settings.
	ChangePath(ctx context.Context, before, after string) error

	// SetRecursive updates whether a target is scanned recursively.
	SetRecursive(ctx context.Context, path string, recursive bool) error
}
