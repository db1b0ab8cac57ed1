package driving

import "github.com/custodia-labs/droppath/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetPlatform sets the platform override ("auto", "windows", "unix").
	SetPlatform(name string) error

	// SetDefaultRecursive sets the Recursive flag for new targets.
	SetDefaultRecursive(recursive bool) error

	// SetHistoryLimit sets the default number of drops listed by history.
	SetHistoryLimit(limit int) error
}
