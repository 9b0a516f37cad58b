package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: pale light over void, after the game the characters
// come from.
var (
	Primary   = lipgloss.Color("#C8B6E2") // Pale Lilac
	Secondary = lipgloss.Color("#5EE6D0") // Lifeblood Teal
	Accent    = lipgloss.Color("#E8A33D") // Geo Gold
	Success   = lipgloss.Color("#7DD181") // Moss Green
	Error     = lipgloss.Color("#E05263") // Infection Red
	Text      = lipgloss.Color("#EDEBF2") // Pale Light
	TextDim   = lipgloss.Color("#8A8799") // Fog
	BgCard    = lipgloss.Color("#1B1A26") // Abyss Slate
	Border    = lipgloss.Color("#3B3950") // Void Edge
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Win = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Lose = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
