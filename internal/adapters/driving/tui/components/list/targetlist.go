// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/droppath/internal/core/domain"
)

// TargetList displays scan targets in a navigable list.
type TargetList struct {
	targets  []domain.Target
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewTargetList creates a new target list component.
func NewTargetList(s *styles.Styles) *TargetList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &TargetList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the target list.
func (l *TargetList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *TargetList) Update(msg tea.Msg) (*TargetList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the target list.
func (l *TargetList) View() string {
	if len(l.targets) == 0 {
		return l.styles.Muted.Render("No targets yet")
	}

	lines := make([]string, 0, len(l.targets)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Targets (%d)", len(l.targets))), "")

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.targets) {
		end = len(l.targets)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderTarget(i, &l.targets[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *TargetList) renderTarget(index int, target *domain.Target) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	mode := "flat"
	if target.Recursive {
		mode = "recursive"
	}

	maxPath := l.width - 16
	if maxPath < 10 {
		maxPath = 10
	}
	path := truncateLeft(target.Path, maxPath)

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxPath, path, mode))
	}
	return l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxPath, path)) +
		l.styles.Muted.Render(mode)
}

// truncateLeft keeps the end of s, where file names live.
func truncateLeft(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return "..." + string(runes[len(runes)-limit+3:])
}

// SetTargets replaces the listed targets, keeping the selection in range.
func (l *TargetList) SetTargets(targets []domain.Target) {
	l.targets = targets
	if l.selected >= len(targets) {
		l.selected = len(targets) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Targets returns the current targets.
func (l *TargetList) Targets() []domain.Target {
	return l.targets
}

// Selected returns the index of the selected target.
func (l *TargetList) Selected() int {
	return l.selected
}

// SelectedTarget returns the currently selected target, or nil if none.
func (l *TargetList) SelectedTarget() *domain.Target {
	if len(l.targets) == 0 || l.selected < 0 || l.selected >= len(l.targets) {
		return nil
	}
	return &l.targets[l.selected]
}

// MoveUp moves selection up.
func (l *TargetList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *TargetList) MoveDown() {
	if l.selected < len(l.targets)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *TargetList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of targets.
func (l *TargetList) Count() int {
	return len(l.targets)
}
