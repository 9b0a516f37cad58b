package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kinator/internal/ui/theme"
)

// Choice is a horizontal selector between a small number of options.
// The parent screen owns confirmation; Choice only tracks the cursor.
type Choice struct {
	Labels   []string
	Selected int
}

// NewChoice creates a choice over the given labels.
func NewChoice(labels ...string) Choice {
	return Choice{Labels: labels}
}

// Update moves the cursor on left/right keys.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l", "tab":
		if c.Selected < len(c.Labels)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// View renders the options side by side, highlighting the selection.
func (c Choice) View() string {
	parts := make([]string, 0, len(c.Labels))
	for i, label := range c.Labels {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 3)
		if i == c.Selected {
			box = box.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
		} else {
			box = box.BorderForeground(theme.Border).Foreground(theme.TextDim)
		}
		parts = append(parts, box.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
