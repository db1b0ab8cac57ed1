package driving

import (
	"context"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// DropService turns dropped URLs into local paths and scan targets.
type DropService interface {
	// Inspect reports whether urls are all local and, if so, the paths
	// they convert to. It never changes targets or history.
	Inspect(urls []string) (*domain.Drop, error)

	// Accept converts urls and adds the resulting paths as targets.
	// Returns domain.ErrNotLocal when any URL is not a local file URL,
	// and a domain.ErrEncoding error when a URL cannot be decoded.
	Accept(ctx context.Context, urls []string) (*domain.Drop, error)

	// AcceptItems is Accept for entries that may already be local paths.
	// Items with Path set skip URL conversion and count as local.
	AcceptItems(ctx context.Context, items []domain.DropItem) (*domain.Drop, error)

	// Recent returns accepted drops, newest first.
	// A limit of zero or less uses the configured history limit.
	Recent(ctx context.Context, limit int) ([]domain.Drop, error)
}
