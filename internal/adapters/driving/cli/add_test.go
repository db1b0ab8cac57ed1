package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

func TestAddCmd_AddsTargets(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(nil, "add", "--platform", "unix", "file:///srv/b", "file:///srv/a%20x", "file:///srv/b")

	require.NoError(t, err)
	assert.Contains(t, out, "  /srv/a x\n")
	assert.Contains(t, out, "Added 2 of 3 target(s)")

	targets, err := targetService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "/srv/a x", targets[0].Path)
	assert.Equal(t, "/srv/b", targets[1].Path)
}

func TestAddCmd_AcceptsPaths(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	dir := t.TempDir()

	out, err := execute(nil, "add", "--platform", "unix", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Added 1 of 1 target(s)")
}

func TestAddCmd_ShortPaths(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(nil, "add", "--platform", "unix", "/", "/a")

	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 of 2 target(s)")

	targets, err := targetService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "/", targets[0].Path)
	assert.Equal(t, "/a", targets[1].Path)
}

func TestAddCmd_RejectsRemoteURLs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(nil, "add", "file:///a", "https://example.com/b")

	assert.ErrorIs(t, err, domain.ErrNotLocal)

	targets, err := targetService.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestAddCmd_NoInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(strings.NewReader("\n"), "add")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no URLs or paths given")
}

func TestAddCmd_ErrorsWithoutServices(t *testing.T) {
	oldDrop := dropService
	dropService = nil
	defer func() { dropService = oldDrop }()

	_, err := execute(nil, "add", "file:///a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "drop service not configured")
}
