package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/droppath/internal/connectors/filesystem"
)

var addCmd = &cobra.Command{
	Use:   "add [url-or-path...]",
	Short: "Add dropped URLs or paths as scan targets",
	Long: `Add every argument as a scan target. Arguments may be file:// URLs or
local paths; paths are made absolute first. Targets already present are
skipped.

With no arguments, URLs are read from stdin one per line.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if dropService == nil {
		return errors.New("drop service not configured")
	}

	inputs, err := readArgsOrStdin(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no URLs or paths given")
	}

	drop, err := dropService.AcceptItems(cmd.Context(), filesystem.TargetItems(inputs))
	if err != nil {
		return fmt.Errorf("failed to add targets: %w", err)
	}

	for _, p := range drop.Paths {
		cmd.Printf("  %s\n", p)
	}
	cmd.Printf("Added %d of %d target(s)\n", drop.Added, len(drop.Paths))
	return nil
}
