package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
	"github.com/custodia-labs/droppath/internal/logger"
)

// Ensure TargetService implements the interface.
var _ driving.TargetService = (*TargetService)(nil)

// TargetService manages scan targets. Paths are unique and listed in
// sorted order.
type TargetService struct {
	targetStore driven.TargetStore
	settings    driving.SettingsService
	now         func() time.Time
}

// NewTargetService creates a new target service.
// settings may be nil, in which case new targets are recursive.
func NewTargetService(targetStore driven.TargetStore, settings driving.SettingsService) *TargetService {
	return &TargetService{
		targetStore: targetStore,
		settings:    settings,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// AddTargets adds every path not already present and returns how many were added.
// Input is sorted and de-duplicated first; empty paths are ignored.
func (s *TargetService) AddTargets(ctx context.Context, paths []string) (int, error) {
	if s.targetStore == nil {
		return 0, domain.ErrNotImplemented
	}

	unique := uniqueSorted(paths)
	recursive := s.defaultRecursive()
	added := 0
	for _, p := range unique {
		_, err := s.targetStore.Get(ctx, p)
		if err == nil {
			logger.Debug("target %s already present", p)
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return added, fmt.Errorf("checking target %s: %w", p, err)
		}

		target := domain.Target{Path: p, Recursive: recursive, AddedAt: s.now()}
		if err := s.targetStore.Save(ctx, target); err != nil {
			return added, fmt.Errorf("adding target %s: %w", p, err)
		}
		added++
	}

	logger.Debug("added %d of %d targets", added, len(unique))
	return added, nil
}

// List returns all targets sorted by path.
func (s *TargetService) List(ctx context.Context) ([]domain.Target, error) {
	if s.targetStore == nil {
		return nil, domain.ErrNotImplemented
	}
	targets, err := s.targetStore.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortTargets(targets)
	return targets, nil
}

// Remove deletes a target.
func (s *TargetService) Remove(ctx context.Context, path string) error {
	if s.targetStore == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.targetStore.Get(ctx, path); err != nil {
		return err
	}
	return s.targetStore.Delete(ctx, path)
}

// ChangePath moves a target to a new path, keeping its settings.
func (s *TargetService) ChangePath(ctx context.Context, before, after string) error {
	if s.targetStore == nil {
		return domain.ErrNotImplemented
	}
	if after == "" {
		return domain.ErrInvalidInput
	}

	target, err := s.targetStore.Get(ctx, before)
	if err != nil {
		return err
	}
	if before == after {
		return nil
	}
	_, err = s.targetStore.Get(ctx, after)
	switch {
	case err == nil:
		return domain.ErrAlreadyExists
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("checking new path: %w", err)
	}

	target.Path = after
	if err := s.targetStore.Save(ctx, *target); err != nil {
		return fmt.Errorf("saving renamed target: %w", err)
	}
	return s.targetStore.Delete(ctx, before)
}

// SetRecursive updates whether a target is scanned recursively.
func (s *TargetService) SetRecursive(ctx context.Context, path string, recursive bool) error {
	if s.targetStore == nil {
		return domain.ErrNotImplemented
	}
	target, err := s.targetStore.Get(ctx, path)
	if err != nil {
		return err
	}
	target.Recursive = recursive
	return s.targetStore.Save(ctx, *target)
}

func (s *TargetService) defaultRecursive() bool {
	if s.settings == nil {
		return domain.DefaultAppSettings().DefaultRecursive
	}
	settings, err := s.settings.Get()
	if err != nil {
		return domain.DefaultAppSettings().DefaultRecursive
	}
	return settings.DefaultRecursive
}

// uniqueSorted returns the distinct non-empty paths in sorted order.
func uniqueSorted(paths []string) []string {
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			result = append(result, p)
		}
	}
	sort.Strings(result)

	n := 0
	for i, p := range result {
		if i == 0 || p != result[n-1] {
			result[n] = p
			n++
		}
	}
	return result[:n]
}
