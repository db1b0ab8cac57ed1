package domain

// Default setting values.
const (
	// DefaultHistoryLimit is how many drops are listed when no limit is given.
	DefaultHistoryLimit = 20
)

// AppSettings holds all application settings.
type AppSettings struct {
	// PlatformOverride is the configured platform name ("auto", "windows", "unix").
	PlatformOverride string

	// Platform is PlatformOverride resolved against the running system.
	Platform Platform

	// DefaultRecursive is the Recursive flag given to newly added targets.
	DefaultRecursive bool

	// HistoryLimit is the default number of drops returned by history queries.
	HistoryLimit int
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		PlatformOverride: PlatformAuto,
		Platform:         CurrentPlatform(),
		DefaultRecursive: true,
		HistoryLimit:     DefaultHistoryLimit,
	}
}
