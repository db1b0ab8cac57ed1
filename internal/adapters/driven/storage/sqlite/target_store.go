package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
)

// targetStore implements driven.TargetStore.
type targetStore struct {
	store *Store
}

var _ driven.TargetStore = (*targetStore)(nil)

// Save stores or updates a target.
func (s *targetStore) Save(ctx context.Context, target domain.Target) error {
	if target.AddedAt.IsZero() {
		target.AddedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO targets (path, recursive, added_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			recursive = excluded.recursive
	`, target.Path, boolToInt(target.Recursive), target.AddedAt)
	if err != nil {
		return fmt.Errorf("saving target: %w", err)
	}
	return nil
}

// Get retrieves a target by path.
func (s *targetStore) Get(ctx context.Context, path string) (*domain.Target, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT path, recursive, added_at FROM targets WHERE path = ?
	`, path)

	target, err := scanTarget(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning target: %w", err)
	}
	return target, nil
}

// Delete removes a target.
func (s *targetStore) Delete(ctx context.Context, path string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM targets WHERE path = ?", path); err != nil {
		return fmt.Errorf("deleting target: %w", err)
	}
	return nil
}

// List returns all targets sorted by path.
func (s *targetStore) List(ctx context.Context) ([]domain.Target, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT path, recursive, added_at FROM targets ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("querying targets: %w", err)
	}
	defer rows.Close()

	targets := []domain.Target{}
	for rows.Next() {
		target, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning target: %w", err)
		}
		targets = append(targets, *target)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating targets: %w", err)
	}

	// SQLite's default collation compares bytes, matching domain.SortTargets.
	return targets, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTarget(row scanner) (*domain.Target, error) {
	var target domain.Target
	var recursive int
	var addedAt sql.NullTime
	if err := row.Scan(&target.Path, &recursive, &addedAt); err != nil {
		return nil, err
	}
	target.Recursive = recursive != 0
	if addedAt.Valid {
		target.AddedAt = addedAt.Time
	}
	return &target, nil
}
