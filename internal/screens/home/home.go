// Package home implements the main menu screen.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/history"
	"github.com/abhisek/kinator/internal/knowledge"
	"github.com/abhisek/kinator/internal/router"
	"github.com/abhisek/kinator/internal/screens/gamelog"
	"github.com/abhisek/kinator/internal/screens/play"
	statsscreen "github.com/abhisek/kinator/internal/screens/stats"
	"github.com/abhisek/kinator/internal/tree"
	"github.com/abhisek/kinator/internal/ui/components"
	"github.com/abhisek/kinator/internal/ui/layout"
	"github.com/abhisek/kinator/internal/ui/theme"
)

const banner = `  ◆ KINATOR ◆
adivino de Hallownest`

// Screen is the main menu. It owns the navigation into play, stats and
// history, and the reset-to-default confirmation.
type Screen struct {
	session *game.Session
	stats   *game.Stats
	store   *knowledge.Store
	log     *history.Log

	menu         components.Menu
	confirmReset bool
	errMsg       string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the home screen.
func New(session *game.Session, stats *game.Stats, store *knowledge.Store, log *history.Log) *Screen {
	s := &Screen{
		session: session,
		stats:   stats,
		store:   store,
		log:     log,
	}

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Nueva partida", Action: func() tea.Cmd {
			s.session.Restart()
			return func() tea.Msg {
				return router.PushMsg{Screen: play.New(s.session, s.stats, s.store, s.log)}
			}
		}},
		{Label: "Estadísticas", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: statsscreen.New(s.stats, s.session.Root())}
			}
		}},
		{Label: "Historial", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: gamelog.New(s.log)}
			}
		}},
		{Label: "Restablecer conocimiento", Action: func() tea.Cmd {
			s.confirmReset = true
			return nil
		}},
		{Label: "Salir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Menú"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "s", Description: "Restablecer"},
			{Key: "n", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.errMsg != "" {
		if kmsg.String() == "esc" {
			s.errMsg = ""
		}
		return s, nil
	}

	if s.confirmReset {
		switch kmsg.String() {
		case "s", "y", "enter":
			s.confirmReset = false
			root, err := s.store.Reset()
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			*s.session = *game.NewSession(root, s.store)
		case "n", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		body := lipgloss.JoinVertical(lipgloss.Left,
			theme.Lose.Render("Error"),
			"",
			theme.Body.Render(s.errMsg),
			"",
			theme.Hint.Render("Esc para continuar"),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
	}

	if s.confirmReset {
		body := lipgloss.JoinVertical(lipgloss.Center,
			theme.Body.Render("¿Restablecer el conocimiento a la versión inicial?"),
			"",
			theme.Hint.Render("Se perderá todo lo aprendido."),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
	}

	questions, leaves := tree.Count(s.session.Root())
	known := theme.Hint.Render(
		fmt.Sprintf("Conozco %d personajes mediante %d preguntas.", leaves, questions))

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(banner),
		"",
		known,
		"",
		s.menu.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
