// Package history provides the recent drops view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/droppath/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/core/ports/driving"
)

// View lists recent drops and the paths they produced.
type View struct {
	ctx         context.Context
	styles      *styles.Styles
	dropService driving.DropService

	drops    []domain.Drop
	selected int
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new history view.
func NewView(s *styles.Styles, dropService driving.DropService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:         context.Background(),
		styles:      s,
		dropService: dropService,
		width:       80,
		height:      24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads recent drops.
func (v *View) Init() tea.Cmd {
	v.loading = true
	ctx := v.ctx
	return func() tea.Msg {
		if v.dropService == nil {
			return messages.HistoryLoaded{Err: fmt.Errorf("drop service not available")}
		}
		drops, err := v.dropService.Recent(ctx, 0)
		return messages.HistoryLoaded{Drops: drops, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.drops = msg.Drops
			v.selected = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.drops)-1 {
				v.selected++
			}
		case "esc", "backspace", "h":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDropZone}
			}
		}
	}
	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Recent drops"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading history..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.drops) == 0:
		b.WriteString(v.styles.Muted.Render("No drops recorded."))
	default:
		for i := range v.drops {
			b.WriteString(v.renderDrop(i, &v.drops[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] select  [esc] back"))
	return b.String()
}

func (v *View) renderDrop(index int, drop *domain.Drop) string {
	header := fmt.Sprintf("%s  %d path(s), %d new",
		drop.CreatedAt.Local().Format("2006-01-02 15:04:05"), len(drop.Paths), drop.Added)

	if index != v.selected {
		return v.styles.Normal.Render("  " + header)
	}

	lines := []string{v.styles.Selected.Render("> " + header)}
	for i, p := range drop.Paths {
		url := ""
		if i < len(drop.URLs) {
			url = drop.URLs[i]
		}
		lines = append(lines,
			v.styles.Normal.Render("    "+p),
			v.styles.Muted.Render("      "+url))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Drops returns the loaded drops.
func (v *View) Drops() []domain.Drop {
	return v.drops
}

// SelectedIndex returns the selected drop index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
