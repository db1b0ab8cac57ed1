// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/styles"
)

// DropInput is the single-line area that receives pasted or typed URLs.
// Pasted newlines arrive as spaces.
type DropInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewDropInput creates a new drop input component.
func NewDropInput(s *styles.Styles) *DropInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Drag files here or paste file:// URLs, then press enter"
	ti.Prompt = "⇣ "
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 60

	return &DropInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init initialises the input.
func (d *DropInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DropInput) Update(msg tea.Msg) (*DropInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the input.
func (d *DropInput) View() string {
	return d.textinput.View()
}

// Value returns the current input value.
func (d *DropInput) Value() string {
	return d.textinput.Value()
}

// SetValue sets the input value.
func (d *DropInput) SetValue(value string) {
	d.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (d *DropInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DropInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DropInput) Focused() bool {
	return d.textinput.Focused()
}

// SetWidth sets the width of the input.
func (d *DropInput) SetWidth(width int) {
	d.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	d.textinput.Width = inputWidth
}

// Width returns the current width.
func (d *DropInput) Width() int {
	return d.width
}

// Reset clears the input.
func (d *DropInput) Reset() {
	d.textinput.Reset()
}
