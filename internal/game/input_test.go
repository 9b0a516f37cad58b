package game

import (
	"testing"

	"github.com/abhisek/kinator/internal/tree"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in     string
		branch tree.Branch
		ok     bool
	}{
		{"s", tree.BranchYes, true},
		{"si", tree.BranchYes, true},
		{"sí", tree.BranchYes, true},
		{"y", tree.BranchYes, true},
		{"YES", tree.BranchYes, true},
		{" Sí ", tree.BranchYes, true},
		{"n", tree.BranchNo, true},
		{"No", tree.BranchNo, true},
		{"", tree.BranchNo, false},
		{"quizás", tree.BranchNo, false},
	}

	for _, tt := range tests {
		branch, ok := ParseAnswer(tt.in)
		if ok != tt.ok || (ok && branch != tt.branch) {
			t.Errorf("ParseAnswer(%q) = (%v, %v), want (%v, %v)",
				tt.in, branch, ok, tt.branch, tt.ok)
		}
	}
}
