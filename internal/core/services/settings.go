package services

import (
	"fmt"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driven"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
	"github.com/custodia-labs/droppath/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPlatform         = "platform"
	keyTargetsRecursive = "targets.recursive"
	keyHistoryLimit     = "history.limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unreadable values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	override := s.getString(keyPlatform, defaults.PlatformOverride)
	platform, err := domain.ParsePlatform(override)
	if err != nil {
		logger.Warn("ignoring configured platform: %v", err)
		override = defaults.PlatformOverride
		platform = defaults.Platform
	}

	return &domain.AppSettings{
		PlatformOverride: override,
		Platform:         platform,
		DefaultRecursive: s.getBool(keyTargetsRecursive, defaults.DefaultRecursive),
		HistoryLimit:     s.getInt(keyHistoryLimit, defaults.HistoryLimit),
	}, nil
}

// SetPlatform sets the platform override.
func (s *SettingsService) SetPlatform(name string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if _, err := domain.ParsePlatform(name); err != nil {
		return err
	}
	if name == "" {
		name = domain.PlatformAuto
	}
	if err := s.configStore.Set(keyPlatform, name); err != nil {
		return fmt.Errorf("saving platform: %w", err)
	}
	return nil
}

// SetDefaultRecursive sets the Recursive flag for new targets.
func (s *SettingsService) SetDefaultRecursive(recursive bool) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(keyTargetsRecursive, recursive); err != nil {
		return fmt.Errorf("saving recursive default: %w", err)
	}
	return nil
}

// SetHistoryLimit sets the default number of drops listed by history.
func (s *SettingsService) SetHistoryLimit(limit int) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if limit < 1 {
		return fmt.Errorf("%w: history limit must be at least 1", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyHistoryLimit, limit); err != nil {
		return fmt.Errorf("saving history limit: %w", err)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
