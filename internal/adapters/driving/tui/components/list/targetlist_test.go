package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

func sampleTargets() []domain.Target {
	return []domain.Target{
		{Path: "/a", Recursive: true},
		{Path: "/b", Recursive: false},
		{Path: "/c", Recursive: true},
	}
}

func TestNewTargetList(t *testing.T) {
	l := NewTargetList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
	assert.Zero(t, l.Count())
	assert.Nil(t, l.SelectedTarget())
}

func TestTargetList_Init(t *testing.T) {
	assert.Nil(t, NewTargetList(nil).Init())
}

func TestTargetList_Navigation(t *testing.T) {
	l := NewTargetList(nil)
	l.SetTargets(sampleTargets())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, l.Selected(), "stays on last item")

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Selected(), "stays on first item")
}

func TestTargetList_SetTargets_ClampsSelection(t *testing.T) {
	l := NewTargetList(nil)
	l.SetTargets(sampleTargets())
	l.MoveDown()
	l.MoveDown()

	l.SetTargets(sampleTargets()[:1])
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, "/a", l.SelectedTarget().Path)

	l.SetTargets(nil)
	assert.Equal(t, 0, l.Selected())
	assert.Nil(t, l.SelectedTarget())
}

func TestTargetList_View(t *testing.T) {
	l := NewTargetList(nil)
	assert.Contains(t, l.View(), "No targets")

	l.SetTargets(sampleTargets())
	view := l.View()

	assert.Contains(t, view, "Targets (3)")
	assert.Contains(t, view, "/a")
	assert.Contains(t, view, "recursive")
	assert.Contains(t, view, "flat")
	assert.Contains(t, view, "> ")
}

func TestTargetList_View_Scrolls(t *testing.T) {
	l := NewTargetList(nil)
	l.SetDimensions(80, 3)
	l.SetTargets(sampleTargets())
	l.MoveDown()
	l.MoveDown()

	view := l.View()

	assert.Contains(t, view, "/c")
	assert.NotContains(t, view, "/a ")
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "/short", truncateLeft("/short", 10))

	long := "/very/long/path/to/some/file.txt"
	got := truncateLeft(long, 12)
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "file.txt"))
	assert.Len(t, []rune(got), 12)
}
