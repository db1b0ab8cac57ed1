package cli

import (
	"bytes"
	"io"

	"github.com/custodia-labs/droppath/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/droppath/internal/core/services"
)

// setupTestServices wires memory-backed services and returns a function
// that restores the previous services and flag values.
func setupTestServices() func() {
	oldDrop, oldTarget, oldSettings := dropService, targetService, settingsService

	settings := services.NewSettingsService(memory.NewConfigStore())
	targets := services.NewTargetService(memory.NewTargetStore(), settings)
	drops := services.NewDropService(targets, memory.NewDropStore(), settings)
	SetServices(Services{Drop: drops, Target: targets, Settings: settings})

	return func() {
		dropService, targetService, settingsService = oldDrop, oldTarget, oldSettings
		platformFlag = ""
		resolveJSON = false
		checkQuiet = false
		historyLimit = 0
		verbose = false
	}
}

// execute runs the root command with args and returns its output.
func execute(stdin io.Reader, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
