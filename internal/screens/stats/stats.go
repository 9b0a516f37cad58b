// Package stats implements the statistics screen.
package stats

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/router"
	"github.com/abhisek/kinator/internal/tree"
	"github.com/abhisek/kinator/internal/ui/layout"
	"github.com/abhisek/kinator/internal/ui/theme"
)

// Screen shows the cumulative counters and the size of the knowledge
// tree.
type Screen struct {
	stats *game.Stats
	root  tree.Node
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the stats screen.
func New(stats *game.Stats, root tree.Node) *Screen {
	return &Screen{stats: stats, root: root}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Estadísticas" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	questions, leaves := tree.Count(s.root)

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(22)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	row := func(name string, v string) string {
		return label.Render(name) + value.Render(v)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Estadísticas"),
		"",
		row("Partidas jugadas", fmt.Sprintf("%d", s.stats.Played)),
		row("Aciertos", fmt.Sprintf("%d", s.stats.Wins)),
		row("Aprendidos", fmt.Sprintf("%d", s.stats.Learned)),
		row("Precisión", fmt.Sprintf("%.1f%%", s.stats.Accuracy())),
		"",
		row("Personajes", fmt.Sprintf("%d", leaves)),
		row("Preguntas", fmt.Sprintf("%d", questions)),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
}
