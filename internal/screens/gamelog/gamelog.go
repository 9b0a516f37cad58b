// Package gamelog implements the screen listing recent games from the
// history log.
package gamelog

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kinator/internal/history"
	"github.com/abhisek/kinator/internal/router"
	"github.com/abhisek/kinator/internal/ui/layout"
	"github.com/abhisek/kinator/internal/ui/theme"
)

const recentLimit = 30

type loadedMsg struct {
	Records []history.Record
	Err     error
}

// Screen lists the most recent finished games.
type Screen struct {
	log     *history.Log
	records []history.Record
	loaded  bool
	errMsg  string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the history screen. The log may be nil when the database
// could not be opened.
func New(log *history.Log) *Screen {
	return &Screen{log: log}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.log == nil {
			return loadedMsg{}
		}
		recs, err := s.log.Recent(context.Background(), recentLimit)
		return loadedMsg{Records: recs, Err: err}
	}
}

func (s *Screen) Title() string { return "Historial" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var body string
	switch {
	case s.errMsg != "":
		body = theme.Lose.Render("Error: " + s.errMsg)
	case !s.loaded:
		body = theme.Hint.Render("Cargando…")
	case len(s.records) == 0:
		body = theme.Hint.Render("Aún no hay partidas registradas.")
	default:
		body = s.renderTable()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Últimas partidas"),
		"",
		body,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) renderTable() string {
	var rows string
	for _, rec := range s.records {
		when := theme.Hint.Render(rec.PlayedAt.Local().Format("02 Jan 15:04"))

		var outcome string
		if rec.Outcome == history.OutcomeWin {
			outcome = theme.Win.Render("acierto ")
		} else {
			outcome = lipgloss.NewStyle().Foreground(theme.Secondary).Render("aprendido")
		}

		name := theme.Body.Render(rec.Character)
		asked := theme.Hint.Render(fmt.Sprintf("(%d preguntas)", rec.QuestionsAsked))

		rows += fmt.Sprintf("%s  %s  %s %s\n", when, outcome, name, asked)
	}
	return rows
}
