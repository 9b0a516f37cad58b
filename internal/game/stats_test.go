package game

import (
	"math"
	"testing"
)

func TestStatsCounters(t *testing.T) {
	tests := []struct {
		name         string
		wins, learns int
	}{
		{"nothing played", 0, 0},
		{"only wins", 3, 0},
		{"only learns", 0, 2},
		{"mixed", 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Stats
			for i := 0; i < tt.wins; i++ {
				s.RecordWin()
			}
			for i := 0; i < tt.learns; i++ {
				s.RecordLearn()
			}

			if s.Played != tt.wins+tt.learns {
				t.Errorf("Played = %d, want %d", s.Played, tt.wins+tt.learns)
			}
			if s.Wins != tt.wins {
				t.Errorf("Wins = %d, want %d", s.Wins, tt.wins)
			}
			if s.Learned != tt.learns {
				t.Errorf("Learned = %d, want %d", s.Learned, tt.learns)
			}

			want := 0.0
			if tt.wins+tt.learns > 0 {
				want = float64(tt.wins) / float64(tt.wins+tt.learns) * 100
			}
			if got := s.Accuracy(); math.Abs(got-want) > 1e-9 {
				t.Errorf("Accuracy = %f, want %f", got, want)
			}
		})
	}
}

func TestLearnNeverCountsAsWin(t *testing.T) {
	var s Stats
	s.RecordLearn()
	if s.Wins != 0 {
		t.Errorf("Wins = %d after a learn, want 0", s.Wins)
	}
}
