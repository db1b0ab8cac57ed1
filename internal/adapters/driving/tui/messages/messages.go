// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/droppath/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDropZone is the paste area and target list.
	ViewDropZone ViewType = iota
	// ViewHistory lists recent drops.
	ViewHistory
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDropZone:
		return "drop_zone"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DropRequested asks for the given items to be accepted as a drop.
type DropRequested struct {
	Items []domain.DropItem
}

// DropAccepted carries the outcome of a drop.
type DropAccepted struct {
	Drop *domain.Drop
	Err  error
}

// TargetsLoaded carries the current target list.
type TargetsLoaded struct {
	Targets []domain.Target
	Err     error
}

// TargetRemoved signals a target was removed.
type TargetRemoved struct {
	Path string
	Err  error
}

// TargetUpdated signals a target's settings changed.
type TargetUpdated struct {
	Path string
	Err  error
}

// HistoryLoaded carries recent drops, newest first.
type HistoryLoaded struct {
	Drops []domain.Drop
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
