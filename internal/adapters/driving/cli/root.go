// Package cli provides the droppath command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
	"github.com/custodia-labs/droppath/internal/logger"
)

// version is set at build time through SetVersion.
var version = "dev"

// Services wired into the commands.
var (
	dropService     driving.DropService
	targetService   driving.TargetService
	settingsService driving.SettingsService
)

// Root flags.
var (
	verbose      bool
	platformFlag string
	configDir    string
	useMemory    bool
)

// Options describes how the caller should build services.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means default.
	ConfigDir string

	// Memory selects in-memory stores instead of the config file and database.
	Memory bool
}

// Services holds the driving ports used by the commands.
type Services struct {
	Drop     driving.DropService
	Target   driving.TargetService
	Settings driving.SettingsService
}

// Builder creates services for a run. The returned cleanup is called
// after the command finishes.
type Builder func(opts Options) (*Services, func(), error)

var (
	builder        Builder
	builderCleanup func()
)

// platformOverrider is implemented by drop services that accept a
// per-run platform.
type platformOverrider interface {
	OverridePlatform(p domain.Platform)
}

var rootCmd = &cobra.Command{
	Use:   "droppath",
	Short: "Turn dropped file URLs into local scan targets",
	Long: `droppath converts file:// URLs, as delivered by drag-and-drop, into
local filesystem paths and keeps them as an ordered list of scan targets.

Use "droppath resolve" to convert URLs, "droppath add" to add targets and
"droppath tui" for an interactive drop zone.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupRun,
	PersistentPostRunE: teardownRun,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	flags.StringVar(&platformFlag, "platform", "", "convert paths for platform (auto, windows, unix)")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.droppath)")
	flags.BoolVar(&useMemory, "memory", false, "keep targets and settings in memory only")
}

// SetServices configures the services used by the commands.
func SetServices(s Services) {
	dropService = s.Drop
	targetService = s.Target
	settingsService = s.Settings
}

// SetBuilder registers the function that creates services on first run.
func SetBuilder(b Builder) {
	builder = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if builder != nil && dropService == nil {
		services, cleanup, err := builder(Options{ConfigDir: configDir, Memory: useMemory})
		if err != nil {
			return fmt.Errorf("initialising: %w", err)
		}
		SetServices(*services)
		builderCleanup = cleanup
	}

	if platformFlag == "" {
		return nil
	}
	p, err := domain.ParsePlatform(platformFlag)
	if err != nil {
		return err
	}
	if o, ok := dropService.(platformOverrider); ok {
		o.OverridePlatform(p)
	}
	logger.Debug("platform override: %s", p)
	return nil
}

func teardownRun(_ *cobra.Command, _ []string) error {
	if builderCleanup != nil {
		builderCleanup()
		builderCleanup = nil
	}
	return nil
}

// effectivePlatform returns the platform conversions should use.
func effectivePlatform() (domain.Platform, error) {
	if platformFlag != "" {
		return domain.ParsePlatform(platformFlag)
	}
	if settingsService == nil {
		return domain.CurrentPlatform(), nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			return domain.CurrentPlatform(), nil
		}
		return 0, fmt.Errorf("reading settings: %w", err)
	}
	return settings.Platform, nil
}
