package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/droppath/internal/connectors/filesystem"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Manage scan targets",
	Long:  `List, remove, rename and watch the scan targets added by drops.`,
	RunE:  runTargetsList,
}

var targetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scan targets",
	Args:  cobra.NoArgs,
	RunE:  runTargetsList,
}

var targetsRemoveCmd = &cobra.Command{
	Use:   "remove [path]",
	Short: "Remove a scan target",
	Args:  cobra.ExactArgs(1),
	RunE:  runTargetsRemove,
}

var targetsRenameCmd = &cobra.Command{
	Use:   "rename [old-path] [new-path]",
	Short: "Change the path of a scan target",
	Args:  cobra.ExactArgs(2),
	RunE:  runTargetsRename,
}

var targetsRecursiveCmd = &cobra.Command{
	Use:   "recursive [path] [true|false]",
	Short: "Set whether a target is scanned recursively",
	Args:  cobra.ExactArgs(2),
	RunE:  runTargetsRecursive,
}

var targetsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Remove targets that disappear from disk",
	Long: `Watch the parent directory of every target and remove targets that are
deleted or renamed. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runTargetsWatch,
}

func init() {
	targetsCmd.AddCommand(targetsListCmd)
	targetsCmd.AddCommand(targetsRemoveCmd)
	targetsCmd.AddCommand(targetsRenameCmd)
	targetsCmd.AddCommand(targetsRecursiveCmd)
	targetsCmd.AddCommand(targetsWatchCmd)
	rootCmd.AddCommand(targetsCmd)
}

func runTargetsList(cmd *cobra.Command, _ []string) error {
	if targetService == nil {
		return errors.New("target service not configured")
	}

	targets, err := targetService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list targets: %w", err)
	}

	if len(targets) == 0 {
		cmd.Println("No targets. Add one with: droppath add <url-or-path>")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tRECURSIVE\tADDED")
	for _, target := range targets {
		fmt.Fprintf(w, "%s\t%t\t%s\n", target.Path, target.Recursive, target.AddedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runTargetsRemove(cmd *cobra.Command, args []string) error {
	if targetService == nil {
		return errors.New("target service not configured")
	}

	if err := targetService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove target: %w", err)
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runTargetsRename(cmd *cobra.Command, args []string) error {
	if targetService == nil {
		return errors.New("target service not configured")
	}

	if err := targetService.ChangePath(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename target: %w", err)
	}
	cmd.Printf("Renamed %s to %s\n", args[0], args[1])
	return nil
}

func runTargetsRecursive(cmd *cobra.Command, args []string) error {
	if targetService == nil {
		return errors.New("target service not configured")
	}

	recursive, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("invalid value %q: expected true or false", args[1])
	}
	if err := targetService.SetRecursive(cmd.Context(), args[0], recursive); err != nil {
		return fmt.Errorf("failed to update target: %w", err)
	}
	cmd.Printf("%s recursive: %t\n", args[0], recursive)
	return nil
}

func runTargetsWatch(cmd *cobra.Command, _ []string) error {
	if targetService == nil {
		return errors.New("target service not configured")
	}

	watcher, err := filesystem.NewWatcher(targetService)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Sync(ctx); err != nil {
		return err
	}
	watcher.OnRemove(func(path string) {
		cmd.Printf("Removed %s\n", path)
	})

	cmd.Printf("Watching %d directories. Press Ctrl+C to stop.\n", len(watcher.Watched()))
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
