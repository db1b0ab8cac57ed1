package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/droppath/internal/core/domain"
)

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewDropZone, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingDropService)
	assert.Nil(t, app)

	app, err = NewApp(nil)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.NotNil(t, app.Init())
}

func TestApp_View_BeforeReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, model.(*App).Ready())
	assert.Contains(t, app.View(), "droppath")
}

func TestApp_QuitKeys(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(t, cmd))

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(t, cmd))

	_, cmd = app.Update(messages.Quit{})
	assert.True(t, isQuit(t, cmd))
}

func TestApp_PasteDropAddsTargets(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(100, 30)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("file:///srv/a"), Paste: true})
	require.NotNil(t, cmd)
	_, cmd = app.Update(cmd())
	require.NotNil(t, cmd)
	app.Update(cmd())

	targets, err := ports.Target.List(context.Background())
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "/srv/a", targets[0].Path)
	assert.Len(t, app.DropView().Targets(), 1)
	assert.NoError(t, app.Err())
}

func TestApp_RejectedDropRecordsError(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	app.Update(messages.DropAccepted{Err: domain.ErrNotLocal})

	assert.ErrorIs(t, app.Err(), domain.ErrNotLocal)
}

func TestApp_HistoryNavigation(t *testing.T) {
	ports := newTestPorts()
	_, err := ports.Drop.Accept(context.Background(), []string{"file:///h"})
	require.NoError(t, err)
	app, _ := NewApp(ports)
	app.SetDimensions(100, 30)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewHistory})
	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Contains(t, app.View(), "/h")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, messages.ViewDropZone, app.CurrentView())
}

func TestApp_HelpView(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(100, 30)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	view := app.View()
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "remove")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewDropZone, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	boom := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: boom})

	assert.ErrorIs(t, app.Err(), boom)
}

func TestApp_TargetServiceFailure(t *testing.T) {
	ports := newTestPorts()
	ports.Target = &failingTargetService{err: errors.New("disk gone")}
	app, _ := NewApp(ports)
	app.SetDimensions(100, 30)

	app.Update(messages.TargetsLoaded{Err: errors.New("disk gone")})

	assert.Error(t, app.DropView().Err())
	assert.Contains(t, app.View(), "disk gone")
}
