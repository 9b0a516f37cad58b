package game

import (
	"strings"

	"github.com/abhisek/kinator/internal/tree"
)

// ParseAnswer maps free-text input to a yes/no branch. Accepts the
// Spanish and English forms the original buttons complement.
func ParseAnswer(text string) (tree.Branch, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "s", "si", "sí", "y", "yes":
		return tree.BranchYes, true
	case "n", "no":
		return tree.BranchNo, true
	}
	return tree.BranchNo, false
}
