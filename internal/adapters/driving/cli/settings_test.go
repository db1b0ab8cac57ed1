package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commandNames := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "platform", "recursive", "history-limit"}, commandNames)
}

func TestSettingsShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(nil, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Conversion]")
	assert.Contains(t, out, "Platform: auto")
	assert.Contains(t, out, "Recursive by default: true")
	assert.Contains(t, out, "Limit: 20")
}

func TestSettingsPlatformCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(nil, "settings", "platform", "windows")
	require.NoError(t, err)
	assert.Contains(t, out, "Platform set to windows")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformWindows, settings.Platform)

	_, err = execute(nil, "settings", "platform", "amiga")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsRecursiveCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(nil, "settings", "recursive", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "New targets recursive: false")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.False(t, settings.DefaultRecursive)

	_, err = execute(nil, "settings", "recursive", "sometimes")
	assert.Error(t, err)
}

func TestSettingsHistoryLimitCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(nil, "settings", "history-limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "History limit set to 5")

	_, err = execute(nil, "settings", "history-limit", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(nil, "settings", "history-limit", "many")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a number")
}

func TestSettingsCmd_ErrorsWithoutServices(t *testing.T) {
	oldSettings := settingsService
	settingsService = nil
	defer func() { settingsService = oldSettings }()

	_, err := execute(nil, "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
