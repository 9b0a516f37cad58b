// Package play implements the game screen: questions, the guess
// confirmation, the learning dialog and the end-of-game result.
package play

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/history"
	"github.com/abhisek/kinator/internal/knowledge"
	"github.com/abhisek/kinator/internal/router"
	"github.com/abhisek/kinator/internal/tree"
	"github.com/abhisek/kinator/internal/ui/components"
	"github.com/abhisek/kinator/internal/ui/layout"
)

type phase int

const (
	phaseAsking phase = iota
	phaseConfirm
	phaseLearnName
	phaseLearnQuestion
	phaseLearnAnswer
	phaseResult
)

// Screen drives one playthrough after another over the shared session.
type Screen struct {
	session *game.Session
	stats   *game.Stats
	store   *knowledge.Store
	log     *history.Log

	phase  phase
	choice components.Choice
	input  components.TextInput

	trueName    string
	newQuestion string

	resultWin  bool
	resultText string
	errMsg     string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates the play screen over a session that is already positioned
// at the root. The history log may be nil.
func New(session *game.Session, stats *game.Stats, store *knowledge.Store, log *history.Log) *Screen {
	s := &Screen{
		session: session,
		stats:   stats,
		store:   store,
		log:     log,
		choice:  components.NewChoice("Sí", "No"),
	}
	s.syncPhase()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Partida"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAsking, phaseConfirm, phaseLearnAnswer:
		return []layout.KeyHint{
			{Key: "←→", Description: "Elegir"},
			{Key: "s/n", Description: "Responder"},
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Volver"},
		}
	case phaseLearnName, phaseLearnQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aceptar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	default:
		return []layout.KeyHint{
			{Key: "cualquier tecla", Description: "Nueva partida"},
			{Key: "Esc", Description: "Volver"},
		}
	}
}

// syncPhase positions the screen on whatever node the session is at.
func (s *Screen) syncPhase() {
	if s.session.Guessing() {
		s.phase = phaseConfirm
	} else {
		s.phase = phaseAsking
	}
	s.choice.Selected = 0
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateComponents(msg)
	}

	if s.errMsg != "" {
		if kmsg.String() == "esc" {
			s.errMsg = ""
		}
		return s, nil
	}

	switch s.phase {
	case phaseAsking, phaseConfirm:
		return s.handleAnswerKey(kmsg)
	case phaseLearnName, phaseLearnQuestion:
		return s.handleLearnInputKey(kmsg)
	case phaseLearnAnswer:
		return s.handleLearnAnswerKey(kmsg)
	case phaseResult:
		if kmsg.String() == "esc" {
			s.session.Restart()
			return s, func() tea.Msg { return router.PopMsg{} }
		}
		s.session.Restart()
		s.syncPhase()
		return s, nil
	}
	return s, nil
}

func (s *Screen) updateComponents(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phaseLearnName, phaseLearnQuestion:
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// handleAnswerKey covers both the question and the guess-confirmation
// prompts, which share the Sí/No choice.
func (s *Screen) handleAnswerKey(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := kmsg.String()

	if branch, ok := game.ParseAnswer(key); ok {
		return s.submitAnswer(branch == tree.BranchYes)
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopMsg{} }
	case "enter":
		return s.submitAnswer(s.choice.Selected == 0)
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(kmsg)
	return s, cmd
}

func (s *Screen) submitAnswer(yes bool) (router.Screen, tea.Cmd) {
	if s.phase == phaseAsking {
		branch := tree.BranchNo
		if yes {
			branch = tree.BranchYes
		}
		if err := s.session.Answer(branch); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.syncPhase()
		return s, nil
	}

	// Confirming the guess.
	if yes {
		return s.finishWin()
	}
	s.input = components.NewTextInput("Nombre del personaje", 60)
	s.phase = phaseLearnName
	return s, s.input.Init()
}

func (s *Screen) handleLearnInputKey(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.syncPhase()
		return s, nil
	case "enter":
		value := strings.TrimSpace(s.input.Value())
		if value == "" {
			return s, nil
		}
		if s.phase == phaseLearnName {
			s.trueName = value
			s.input = components.NewTextInput("Pregunta de sí/no que lo distinga", 120)
			s.phase = phaseLearnQuestion
			return s, s.input.Init()
		}
		s.newQuestion = value
		s.choice.Selected = 0
		s.phase = phaseLearnAnswer
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *Screen) handleLearnAnswerKey(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := kmsg.String()

	if branch, ok := game.ParseAnswer(key); ok {
		return s.finishLearn(branch == tree.BranchYes)
	}

	switch key {
	case "esc":
		s.syncPhase()
		return s, nil
	case "enter":
		return s.finishLearn(s.choice.Selected == 0)
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(kmsg)
	return s, cmd
}

func (s *Screen) finishWin() (router.Screen, tea.Cmd) {
	name := s.session.CurrentGuess()
	depth := s.session.Depth()

	s.stats.RecordWin()
	if err := s.store.SaveStats(*s.stats); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.appendHistory(history.OutcomeWin, name, depth)

	s.resultWin = true
	s.resultText = fmt.Sprintf("¡Genial! Era %s.", name)
	s.phase = phaseResult
	return s, nil
}

func (s *Screen) finishLearn(yesForTrueName bool) (router.Screen, tea.Cmd) {
	depth := s.session.Depth()

	if err := s.session.Learn(s.trueName, s.newQuestion, yesForTrueName); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.stats.RecordLearn()
	if err := s.store.SaveStats(*s.stats); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.appendHistory(history.OutcomeLearned, s.trueName, depth)

	s.resultWin = false
	s.resultText = fmt.Sprintf("He aprendido a %s.", s.trueName)
	s.phase = phaseResult
	return s, nil
}

func (s *Screen) appendHistory(outcome history.Outcome, name string, depth int) {
	if s.log == nil {
		return
	}
	// Best effort; the game log never blocks play.
	_ = s.log.Append(context.Background(), history.Record{
		Outcome:        outcome,
		Character:      name,
		QuestionsAsked: depth,
	})
}
