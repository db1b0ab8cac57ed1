// Package dropzone provides the main drop zone view for the TUI.
package dropzone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
)

// View is the drop zone: a paste area above the target list.
type View struct {
	ctx           context.Context
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	dropService   driving.DropService
	targetService driving.TargetService

	input   *input.DropInput
	targets *list.TargetList
	bar     *status.Bar
	focus   status.Focus

	lastDrop *domain.Drop
	err      error
	width    int
	height   int
}

// NewView creates a new drop zone view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	dropService driving.DropService,
	targetService driving.TargetService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dropService:   dropService,
		targetService: targetService,
		input:         input.NewDropInput(s),
		targets:       list.NewTargetList(s),
		bar:           status.NewBar(s, km),
		focus:         status.FocusDropZone,
		width:         80,
		height:        24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init focuses the drop zone and loads targets.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadTargets())
}

// Update handles messages for the drop zone.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.focus == status.FocusTargets {
			return v.handleTargetKey(msg)
		}
		return v.handleInputKey(msg)

	case messages.DropRequested:
		return v, v.accept(msg.Items)

	case messages.DropAccepted:
		v.handleDropAccepted(msg)
		if msg.Err != nil {
			return v, nil
		}
		return v, v.loadTargets()

	case messages.TargetsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.targets.SetTargets(msg.Targets)
		v.bar.SetTargetCount(len(msg.Targets))
		return v, nil

	case messages.TargetRemoved:
		if msg.Err != nil {
			v.bar.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.bar.SetState(status.StateAccepted, "Removed "+msg.Path)
		return v, v.loadTargets()

	case messages.TargetUpdated:
		if msg.Err != nil {
			v.bar.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		return v, v.loadTargets()
	}

	if v.focus == status.FocusDropZone {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	// A drag-and-drop gesture arrives as one bracketed paste.
	if msg.Paste {
		items := ParseDrop(string(msg.Runes))
		if len(items) == 0 {
			return v, nil
		}
		return v, v.accept(items)
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Accept):
		items := ParseDrop(v.input.Value())
		v.input.Reset()
		if len(items) == 0 {
			return v, nil
		}
		return v, v.accept(items)
	case keymap.Matches(msg.String(), v.keymap.SwitchFocus):
		v.setFocus(status.FocusTargets)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleTargetKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.SwitchFocus):
		v.setFocus(status.FocusDropZone)
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Remove):
		if target := v.targets.SelectedTarget(); target != nil {
			return v, v.removeTarget(target.Path)
		}
	case keymap.Matches(key, v.keymap.ToggleRecursive):
		if target := v.targets.SelectedTarget(); target != nil {
			return v, v.setRecursive(target.Path, !target.Recursive)
		}
	case keymap.Matches(key, v.keymap.History):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}
	case keymap.Matches(key, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	default:
		v.targets, _ = v.targets.Update(msg)
	}
	return v, nil
}

func (v *View) setFocus(f status.Focus) {
	v.focus = f
	v.bar.SetFocus(f)
	if f == status.FocusTargets {
		v.input.Blur()
	}
}

func (v *View) handleDropAccepted(msg messages.DropAccepted) {
	switch {
	case errors.Is(msg.Err, domain.ErrNotLocal):
		v.bar.SetState(status.StateRejected, "Not added: only local files can be dropped")
	case errors.Is(msg.Err, domain.ErrEncoding):
		v.bar.SetState(status.StateError, "malformed URL in drop")
	case msg.Err != nil:
		v.bar.SetState(status.StateError, msg.Err.Error())
	default:
		v.lastDrop = msg.Drop
		v.bar.SetState(status.StateAccepted,
			fmt.Sprintf("Added %d of %d target(s)", msg.Drop.Added, len(msg.Drop.Paths)))
	}
}

// accept returns a command that hands items to the drop service.
func (v *View) accept(items []domain.DropItem) tea.Cmd {
	v.bar.SetState(status.StateAccepting, "")
	ctx := v.ctx
	return func() tea.Msg {
		if v.dropService == nil {
			return messages.DropAccepted{Err: fmt.Errorf("drop service not available")}
		}
		drop, err := v.dropService.AcceptItems(ctx, items)
		return messages.DropAccepted{Drop: drop, Err: err}
	}
}

func (v *View) loadTargets() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.targetService == nil {
			return messages.TargetsLoaded{Err: fmt.Errorf("target service not available")}
		}
		targets, err := v.targetService.List(ctx)
		return messages.TargetsLoaded{Targets: targets, Err: err}
	}
}

func (v *View) removeTarget(path string) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		err := v.targetService.Remove(ctx, path)
		return messages.TargetRemoved{Path: path, Err: err}
	}
}

func (v *View) setRecursive(path string, recursive bool) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		err := v.targetService.SetRecursive(ctx, path, recursive)
		return messages.TargetUpdated{Path: path, Err: err}
	}
}

// View renders the drop zone.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("droppath"))
	b.WriteString(v.styles.Muted.Render("  drop files to add scan targets"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Framed(v.input.View(), v.focus == status.FocusDropZone, v.width))
	b.WriteString("\n")

	if v.lastDrop != nil {
		b.WriteString(v.renderLastDrop())
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Framed(v.targets.View(), v.focus == status.FocusTargets, v.width))
	b.WriteString("\n")
	b.WriteString(v.bar.View())

	return b.String()
}

func (v *View) renderLastDrop() string {
	lines := make([]string, 0, len(v.lastDrop.Paths)+1)
	lines = append(lines, v.styles.Subtitle.Render("Last drop"))
	for _, p := range v.lastDrop.Paths {
		lines = append(lines, v.styles.Normal.Render("  "+p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width - 6)
	v.targets.SetDimensions(width-4, height-12)
	v.bar.SetWidth(width)
}

// Focus returns which area has keyboard focus.
func (v *View) Focus() status.Focus {
	return v.focus
}

// Targets returns the listed targets.
func (v *View) Targets() []domain.Target {
	return v.targets.Targets()
}

// LastDrop returns the most recently accepted drop.
func (v *View) LastDrop() *domain.Drop {
	return v.lastDrop
}

// Status returns the status bar state and message.
func (v *View) Status() (status.State, string) {
	return v.bar.State(), v.bar.Message()
}

// InputValue returns the text typed into the drop zone.
func (v *View) InputValue() string {
	return v.input.Value()
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
