package play

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kinator/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}

	var content string
	switch s.phase {
	case phaseAsking:
		content = s.renderPrompt("Pregunta " + strconv.Itoa(s.session.Depth()+1))
	case phaseConfirm:
		content = s.renderPrompt("Mi conjetura")
	case phaseLearnName:
		content = s.renderLearnInput("No lo adiviné. ¿Cuál era tu personaje?")
	case phaseLearnQuestion:
		content = s.renderLearnInput(
			"Dame una pregunta de sí/no que distinga a '" + s.trueName +
				"' de '" + s.session.CurrentGuess() + "'.")
	case phaseLearnAnswer:
		content = s.renderLearnAnswer()
	case phaseResult:
		content = s.renderResult()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderPrompt shows the current question or guess with the Sí/No
// choice underneath.
func (s *Screen) renderPrompt(caption string) string {
	label := theme.Hint.Render(caption)
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(64).
		Align(lipgloss.Center).
		Render(s.session.CurrentText())

	body := lipgloss.JoinVertical(lipgloss.Center, label, "", text, "", s.choice.View())
	return theme.Card.Render(body)
}

func (s *Screen) renderLearnInput(prompt string) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(64).
		Render(prompt)

	body := lipgloss.JoinVertical(lipgloss.Left, text, "", s.input.View())
	return theme.Card.Render(body)
}

func (s *Screen) renderLearnAnswer() string {
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(64).
		Align(lipgloss.Center).
		Render("Para '" + s.trueName + "', ¿la respuesta a esa pregunta es SÍ?")

	body := lipgloss.JoinVertical(lipgloss.Center, text, "", s.choice.View())
	return theme.Card.Render(body)
}

func (s *Screen) renderResult() string {
	style := theme.Win
	symbol := "★"
	if !s.resultWin {
		style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		symbol = "✎"
	}

	lines := []string{
		style.Render(symbol + "  " + s.resultText),
		"",
		theme.Hint.Render("pulsa cualquier tecla para otra partida"),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func renderError(width, height int, msg string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Lose.Render("Error"),
		"",
		theme.Body.Render(msg),
		"",
		theme.Hint.Render("Esc para continuar"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
}
