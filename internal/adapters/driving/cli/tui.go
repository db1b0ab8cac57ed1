package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui"
	"github.com/custodia-labs/droppath/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive drop zone",
	Long: `Launch a terminal drop zone. Drag files from a file manager onto the
terminal window, or paste file:// URLs, to add them as scan targets.

Controls:
  Enter    - Add typed URLs
  Tab      - Switch between drop zone and targets
  ↑/k, ↓/j - Navigate targets
  d        - Remove selected target
  r        - Toggle recursive
  h        - Recent drops
  Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if dropService == nil || targetService == nil {
		return errors.New("drop and target services not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Drop:     dropService,
		Target:   targetService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Log lines would corrupt the alternate screen.
	previous := logger.Output()
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(previous)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
