package game

import "math"

// Scoreboard holds both scores and the match clock
type Scoreboard struct {
	Team1Score int
	Team2Score int
	TimeLeft   float64
}

// NewScoreboard creates a 0-0 scoreboard with the given match length
func NewScoreboard(seconds float64) *Scoreboard {
	s := &Scoreboard{}
	s.SetTime(seconds)
	return s
}

// AddPoint credits one goal to team
func (s *Scoreboard) AddPoint(team Team) {
	switch team {
	case Team1:
		s.Team1Score++
	case Team2:
		s.Team2Score++
	}
}

// SetScore overwrites both scores; negatives become zero
func (s *Scoreboard) SetScore(team1, team2 int) {
	s.Team1Score = max(team1, 0)
	s.Team2Score = max(team2, 0)
}

// SetTime overwrites the remaining time; negatives become zero
func (s *Scoreboard) SetTime(seconds float64) {
	s.TimeLeft = max(seconds, 0)
}

// Tick counts the clock down by dt, stopping at zero
func (s *Scoreboard) Tick(dt float64) {
	s.TimeLeft = max(s.TimeLeft-dt, 0)
}

// Expired reports whether the clock has run out
func (s *Scoreboard) Expired() bool {
	return s.TimeLeft <= 0
}

// Clock returns the remaining time as whole minutes and seconds
func (s *Scoreboard) Clock() (minutes, seconds int) {
	return int(s.TimeLeft / 60), int(math.Mod(s.TimeLeft, 60))
}

// Result returns the end-of-match text for the current score
func (s *Scoreboard) Result() string {
	switch {
	case s.Team1Score > s.Team2Score:
		return "PLAYER 1 WINS"
	case s.Team2Score > s.Team1Score:
		return "PLAYER 2 WINS"
	}
	return "TIE"
}
