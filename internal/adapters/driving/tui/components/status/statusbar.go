// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateAccepting State = "accepting"
	StateAccepted  State = "accepted"
	StateRejected  State = "rejected"
	StateError     State = "error"
)

// Focus selects which key hints the bar shows.
type Focus int

const (
	FocusDropZone Focus = iota
	FocusTargets
)

// Bar displays the outcome of the last drop and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	focus       Focus
	message     string
	targetCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the bar is driven through its setters.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// The bar style pads one cell on each side.
	padding := s.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateAccepting:
		return s.styles.Muted.Render("Adding...")
	case StateAccepted:
		return s.styles.Success.Render(s.message)
	case StateRejected:
		return s.styles.Warning.Render(s.message)
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
	}
	return s.styles.Muted.Render(fmt.Sprintf("%d targets", s.targetCount))
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.focus {
	case FocusTargets:
		bindings = s.keymap.TargetsHelp()
	default:
		bindings = s.keymap.DropZoneHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetState sets the current state and message.
func (s *Bar) SetState(state State, message string) {
	s.state = state
	s.message = message
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetFocus selects the key hints to show.
func (s *Bar) SetFocus(f Focus) {
	s.focus = f
}

// SetTargetCount sets the number of targets shown when ready.
func (s *Bar) SetTargetCount(count int) {
	s.targetCount = count
}

// TargetCount returns the current target count.
func (s *Bar) TargetCount() int {
	return s.targetCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
