package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
)

// dropStore implements driven.DropStore.
type dropStore struct {
	store *Store
}

var _ driven.DropStore = (*dropStore)(nil)

// Save records a drop.
func (s *dropStore) Save(ctx context.Context, drop domain.Drop) error {
	urlsJSON, err := json.Marshal(nonNil(drop.URLs))
	if err != nil {
		return fmt.Errorf("marshalling urls: %w", err)
	}
	pathsJSON, err := json.Marshal(nonNil(drop.Paths))
	if err != nil {
		return fmt.Errorf("marshalling paths: %w", err)
	}
	if drop.CreatedAt.IsZero() {
		drop.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO drops (id, urls, paths, local, platform, added, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			urls = excluded.urls,
			paths = excluded.paths,
			local = excluded.local,
			platform = excluded.platform,
			added = excluded.added
	`, drop.ID, string(urlsJSON), string(pathsJSON), boolToInt(drop.Local),
		drop.Platform.String(), drop.Added, drop.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving drop: %w", err)
	}
	return nil
}

// Get retrieves a drop by ID.
func (s *dropStore) Get(ctx context.Context, id string) (*domain.Drop, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, urls, paths, local, platform, added, created_at
		FROM drops WHERE id = ?
	`, id)

	drop, err := scanDrop(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return drop, nil
}

// List returns up to limit drops, newest first.
func (s *dropStore) List(ctx context.Context, limit int) ([]domain.Drop, error) {
	query := `
		SELECT id, urls, paths, local, platform, added, created_at
		FROM drops ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying drops: %w", err)
	}
	defer rows.Close()

	drops := []domain.Drop{}
	for rows.Next() {
		drop, err := scanDrop(rows)
		if err != nil {
			return nil, err
		}
		drops = append(drops, *drop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drops: %w", err)
	}
	return drops, nil
}

func scanDrop(row scanner) (*domain.Drop, error) {
	var drop domain.Drop
	var urlsJSON, pathsJSON, platform string
	var local int
	var createdAt sql.NullTime
	if err := row.Scan(&drop.ID, &urlsJSON, &pathsJSON, &local, &platform,
		&drop.Added, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning drop: %w", err)
	}

	if err := json.Unmarshal([]byte(urlsJSON), &drop.URLs); err != nil {
		return nil, fmt.Errorf("unmarshalling urls: %w", err)
	}
	if err := json.Unmarshal([]byte(pathsJSON), &drop.Paths); err != nil {
		return nil, fmt.Errorf("unmarshalling paths: %w", err)
	}

	p, err := domain.ParsePlatform(platform)
	if err != nil {
		return nil, fmt.Errorf("parsing platform: %w", err)
	}
	drop.Platform = p
	drop.Local = local != 0
	if createdAt.Valid {
		drop.CreatedAt = createdAt.Time
	}
	return &drop, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
