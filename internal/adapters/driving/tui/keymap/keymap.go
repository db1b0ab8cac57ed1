// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Accept submits the typed URLs as a drop.
	Accept key.Binding

	// SwitchFocus moves focus between the drop zone and the target list.
	SwitchFocus key.Binding

	// Up navigates up in the target list.
	Up key.Binding

	// Down navigates down in the target list.
	Down key.Binding

	// Remove deletes the selected target.
	Remove key.Binding

	// ToggleRecursive flips the selected target's recursive flag.
	ToggleRecursive key.Binding

	// History shows recent drops.
	History key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the drop zone.
	Back key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		ToggleRecursive: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recursive"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
	}
}

// DropZoneHelp returns hints shown while the drop zone has focus.
func (k *KeyMap) DropZoneHelp() []key.Binding {
	return []key.Binding{k.Accept, k.SwitchFocus, k.Quit}
}

// TargetsHelp returns hints shown while the target list has focus.
func (k *KeyMap) TargetsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Remove, k.ToggleRecursive, k.History, k.SwitchFocus, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.SwitchFocus},
		{k.Up, k.Down, k.Remove, k.ToggleRecursive},
		{k.History, k.Help, k.Back, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
