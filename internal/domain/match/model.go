package match

import (
	"errors"
	"strings"

	"clubdesk/internal/domain/document"
)

// Match status constants
const (
	StatusUpcoming = "upcoming"
	StatusFinished = "finished"
)

// Domain errors
var (
	ErrNotFinished = errors.New("match is not finished")
)

// Match is one fixture on the club calendar. Scores stay zero until Finish
// records a result and the status flips to finished.
type Match struct {
	ID        string
	Date      string // YYYY-MM-DD
	Rival     string
	Venue     string
	ScoreHome int
	ScoreAway int
	Status    string
}

// Stat is one player's line for a finished match.
type Stat struct {
	ID          string
	MatchID     string
	PlayerID    string
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

// Validate checks if the Match has valid data.
// PRE: Match struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (m *Match) Validate() error {
	if strings.TrimSpace(m.Rival) == "" {
		return errors.New("rival cannot be empty")
	}
	if m.Status != StatusUpcoming && m.Status != StatusFinished {
		return errors.New("status must be 'upcoming' or 'finished'")
	}
	if m.Date == "" {
		return errors.New("match date is required")
	}
	if _, err := document.ParseDate("match_date", m.Date); err != nil {
		return err
	}
	return nil
}

// IsFinished returns true once a result has been recorded.
// INVARIANT: Match fields are not mutated
func (m *Match) IsFinished() bool {
	return m.Status == StatusFinished
}

// Finish records the final score and flips the status.
// PRE: scores are >= 0
// POST: Status is finished, scores are set
func (m *Match) Finish(home, away int) error {
	if home < 0 || away < 0 {
		return errors.New("scores cannot be negative")
	}
	m.ScoreHome = home
	m.ScoreAway = away
	m.Status = StatusFinished
	return nil
}

// Validate checks if the Stat has valid data.
// POST: Returns error if any counter is negative or a reference is missing
func (s *Stat) Validate() error {
	if s.MatchID == "" || s.PlayerID == "" {
		return errors.New("stat must reference a match and a player")
	}
	if s.Goals < 0 || s.Assists < 0 || s.YellowCards < 0 || s.RedCards < 0 {
		return errors.New("stat counters cannot be negative")
	}
	if s.RedCards > 1 {
		return errors.New("a player cannot collect more than one red card per match")
	}
	return nil
}
