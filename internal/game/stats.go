package game

// Stats holds the cumulative play counters. Loaded once at startup and
// saved after every terminal outcome.
type Stats struct {
	Played  int `json:"played"`
	Wins    int `json:"wins"`
	Learned int `json:"learned"`
}

// RecordWin counts a game ended by a correct guess.
func (s *Stats) RecordWin() {
	s.Played++
	s.Wins++
}

// RecordLearn counts a game ended by teaching a new character. Learned
// games never count as wins.
func (s *Stats) RecordLearn() {
	s.Played++
	s.Learned++
}

// Accuracy returns the win percentage over all played games, 0 when
// nothing has been played.
func (s Stats) Accuracy() float64 {
	if s.Played == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.Played) * 100
}
