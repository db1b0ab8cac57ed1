package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long:  `View and change the conversion platform and target defaults.`,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsPlatformCmd = &cobra.Command{
	Use:   "platform [auto|windows|unix]",
	Short: "Set the conversion platform",
	Long: `Set which platform paths are converted for.

  auto    - detect from the running system (default)
  windows - replace backslashes with forward slashes
  unix    - leave paths as decoded`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsPlatform,
}

var settingsRecursiveCmd = &cobra.Command{
	Use:   "recursive [true|false]",
	Short: "Set whether new targets are scanned recursively",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRecursive,
}

var settingsHistoryLimitCmd = &cobra.Command{
	Use:   "history-limit [n]",
	Short: "Set how many drops history shows by default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHistoryLimit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPlatformCmd)
	settingsCmd.AddCommand(settingsRecursiveCmd)
	settingsCmd.AddCommand(settingsHistoryLimitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Conversion]")
	cmd.Printf("  Platform: %s (%s)\n", settings.PlatformOverride, settings.Platform)
	cmd.Println()
	cmd.Println("[Targets]")
	cmd.Printf("  Recursive by default: %t\n", settings.DefaultRecursive)
	cmd.Println()
	cmd.Println("[History]")
	cmd.Printf("  Limit: %d\n", settings.HistoryLimit)
	return nil
}

func runSettingsPlatform(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetPlatform(args[0]); err != nil {
		return fmt.Errorf("failed to set platform: %w", err)
	}
	cmd.Printf("Platform set to %s\n", args[0])
	return nil
}

func runSettingsRecursive(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	recursive, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: expected true or false", args[0])
	}
	if err := settingsService.SetDefaultRecursive(recursive); err != nil {
		return fmt.Errorf("failed to set recursive default: %w", err)
	}
	cmd.Printf("New targets recursive: %t\n", recursive)
	return nil
}

func runSettingsHistoryLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	limit, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid limit %q: expected a number", args[0])
	}
	if err := settingsService.SetHistoryLimit(limit); err != nil {
		return fmt.Errorf("failed to set history limit: %w", err)
	}
	cmd.Printf("History limit set to %d\n", limit)
	return nil
}
