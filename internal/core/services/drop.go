package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
	"github.com/custodia-labs/droppath/internal/logger"
	"github.com/custodia-labs/droppath/internal/urlpath"
)

// Ensure DropService implements the interface.
var _ driving.DropService = (*DropService)(nil)

// DropService turns dropped URLs into scan targets and keeps a history
// of accepted drops.
type DropService struct {
	targets   driving.TargetService
	dropStore driven.DropStore
	settings  driving.SettingsService

	// override, when set, replaces the configured platform.
	override *domain.Platform
	now      func() time.Time
}

// NewDropService creates a new drop service.
// dropStore and settings may be nil; drops are then not recorded and
// the current platform is used.
func NewDropService(
	targets driving.TargetService,
	dropStore driven.DropStore,
	settings driving.SettingsService,
) *DropService {
	return &DropService{
		targets:   targets,
		dropStore: dropStore,
		settings:  settings,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// OverridePlatform forces conversion for p regardless of settings.
// Used by the --platform flag.
func (s *DropService) OverridePlatform(p domain.Platform) {
	s.override = &p
}

// Inspect reports whether urls are all local and the paths they convert to.
func (s *DropService) Inspect(urls []string) (*domain.Drop, error) {
	return s.inspect(domain.URLItems(urls))
}

func (s *DropService) inspect(items []domain.DropItem) (*domain.Drop, error) {
	platform := s.platform()

	pending := make([]string, 0, len(items))
	urls := make([]string, len(items))
	for i, item := range items {
		urls[i] = item.URL
		if item.Path == "" {
			pending = append(pending, item.URL)
		}
	}
	helper := urlpath.FromMany(pending, urlpath.WithPlatform(platform))

	drop := &domain.Drop{
		URLs:      urls,
		Paths:     []string{},
		Local:     helper.AreAllLocal(),
		Platform:  platform,
		CreatedAt: s.now(),
	}
	if !drop.Local {
		return drop, nil
	}

	converted, err := helper.LocalFilePaths()
	if err != nil {
		return nil, err
	}

	// Items given as paths keep them as-is; the rest take the next
	// converted URL, preserving drop order.
	paths := make([]string, len(items))
	next := 0
	for i, item := range items {
		if item.Path != "" {
			paths[i] = item.Path
			continue
		}
		paths[i] = converted[next]
		next++
	}
	drop.Paths = paths
	return drop, nil
}

// Accept converts urls and adds the resulting paths as targets.
func (s *DropService) Accept(ctx context.Context, urls []string) (*domain.Drop, error) {
	return s.AcceptItems(ctx, domain.URLItems(urls))
}

// AcceptItems is Accept for drops that mix URLs with local paths.
func (s *DropService) AcceptItems(ctx context.Context, items []domain.DropItem) (*domain.Drop, error) {
	if s.targets == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: nothing dropped", domain.ErrInvalidInput)
	}

	drop, err := s.inspect(items)
	if err != nil {
		return nil, err
	}
	if !drop.Local {
		logger.Debug("rejected drop of %d items: not all local", len(items))
		return nil, fmt.Errorf("%w: %d urls dropped", domain.ErrNotLocal, len(items))
	}

	added, err := s.targets.AddTargets(ctx, drop.Paths)
	if err != nil {
		return nil, fmt.Errorf("adding targets: %w", err)
	}
	drop.Added = added
	drop.ID = uuid.New().String()

	if s.dropStore != nil {
		if err := s.dropStore.Save(ctx, *drop); err != nil {
			return nil, fmt.Errorf("recording drop: %w", err)
		}
	}

	logger.Debug("accepted drop %s: %d paths, %d new targets", drop.ID, len(drop.Paths), added)
	return drop, nil
}

// Recent returns accepted drops, newest first.
func (s *DropService) Recent(ctx context.Context, limit int) ([]domain.Drop, error) {
	if s.dropStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if limit <= 0 {
		limit = s.historyLimit()
	}
	return s.dropStore.List(ctx, limit)
}

func (s *DropService) platform() domain.Platform {
	if s.override != nil {
		return *s.override
	}
	if s.settings == nil {
		return domain.CurrentPlatform()
	}
	settings, err := s.settings.Get()
	if err != nil {
		return domain.CurrentPlatform()
	}
	return settings.Platform
}

func (s *DropService) historyLimit() int {
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil && settings.HistoryLimit > 0 {
			return settings.HistoryLimit
		}
	}
	return domain.DefaultHistoryLimit
}
