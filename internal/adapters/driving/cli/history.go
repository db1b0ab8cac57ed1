package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent drops",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of drops to show (0 = configured limit)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if dropService == nil {
		return errors.New("drop service not configured")
	}

	drops, err := dropService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(drops) == 0 {
		cmd.Println("No drops recorded.")
		return nil
	}

	for _, drop := range drops {
		cmd.Printf("%s  %s  %d new, %s\n",
			drop.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			shortID(drop.ID), drop.Added, drop.Platform)
		cmd.Printf("  %s\n", strings.Join(drop.Paths, "\n  "))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
