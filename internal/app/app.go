// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/history"
	"github.com/abhisek/kinator/internal/knowledge"
	"github.com/abhisek/kinator/internal/router"
	"github.com/abhisek/kinator/internal/screens/home"
	"github.com/abhisek/kinator/internal/ui/layout"
)

// Options carries the explicit handles the screens work against.
type Options struct {
	Store   *knowledge.Store
	Session *game.Session
	Stats   *game.Stats
	Log     *history.Log // may be nil
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	stats  *game.Stats
	width  int
	height int
}

func newModel(opts Options) Model {
	return Model{
		router: router.New(home.New(opts.Session, opts.Stats, opts.Store, opts.Log)),
		stats:  opts.Stats,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	strip := layout.StatsStrip(m.stats.Played, m.stats.Wins, m.stats.Learned, m.stats.Accuracy())
	header := layout.RenderHeader(title, strip, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
	if provider, ok := active.(router.KeyHintProvider); ok {
		if h := provider.KeyHints(); h != nil {
			hints = h
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
