package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/droppath/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
	assert.NotNil(t, service.configStore)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.PlatformOverride, settings.PlatformOverride)
	assert.Equal(t, defaults.Platform, settings.Platform)
	assert.Equal(t, defaults.DefaultRecursive, settings.DefaultRecursive)
	assert.Equal(t, defaults.HistoryLimit, settings.HistoryLimit)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("platform", "windows")
	_ = store.Set("targets.recursive", false)
	_ = store.Set("history.limit", 5)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "windows", settings.PlatformOverride)
	assert.Equal(t, domain.PlatformWindows, settings.Platform)
	assert.False(t, settings.DefaultRecursive)
	assert.Equal(t, 5, settings.HistoryLimit)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("platform", "amiga")
	_ = store.Set("history.limit", -3)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Platform, settings.Platform)
	assert.Equal(t, domain.PlatformAuto, settings.PlatformOverride)
	assert.Equal(t, defaults.HistoryLimit, settings.HistoryLimit)
}

func TestSettingsService_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	_, err := service.Get()
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetPlatform("windows"), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetDefaultRecursive(true), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetHistoryLimit(3), domain.ErrNotImplemented)
}

func TestSettingsService_SetPlatform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		stored   string
		platform domain.Platform
	}{
		{"windows", "windows", "windows", domain.PlatformWindows},
		{"unix alias", "unix", "unix", domain.PlatformOther},
		{"empty means auto", "", domain.PlatformAuto, domain.CurrentPlatform()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.SetPlatform(tt.input))
			assert.Equal(t, tt.stored, store.GetString("platform"))

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.platform, settings.Platform)
		})
	}
}

func TestSettingsService_SetPlatform_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.SetPlatform("beos")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, exists := store.Get("platform")
	assert.False(t, exists)
}

func TestSettingsService_SetDefaultRecursive(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetDefaultRecursive(false))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.False(t, settings.DefaultRecursive)

	require.NoError(t, service.SetDefaultRecursive(true))
	settings, err = service.Get()
	require.NoError(t, err)
	assert.True(t, settings.DefaultRecursive)
}

func TestSettingsService_SetHistoryLimit(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetHistoryLimit(7))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, settings.HistoryLimit)
}

func TestSettingsService_SetHistoryLimit_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.SetHistoryLimit(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetHistoryLimit(-1), domain.ErrInvalidInput)
}
