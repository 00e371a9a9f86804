package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubdesk/internal/domain/match"
)

// MatchStoreForOrchestrator defines the store interface needed by match orchestrators.
type MatchStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (match.Match, error)
	Save(ctx context.Context, m match.Match) error
	Delete(ctx context.Context, id string) error
}

// StatStoreForOrchestrator defines the store interface for stat lines.
type StatStoreForOrchestrator interface {
	Save(ctx context.Context, s match.Stat) error
	ListByMatch(ctx context.Context, matchID string) ([]match.Stat, error)
}

// SaveMatchInput carries input for the save match orchestrator.
type SaveMatchInput struct {
	Match match.Match
}

// SaveMatchDeps holds dependencies for SaveMatch.
type SaveMatchDeps struct {
	MatchStore MatchStoreForOrchestrator
	GenerateID func() string
}

// ExecuteSaveMatch creates or updates a fixture.
// PRE: Match passes domain validation
// POST: Match persisted; new fixtures start as upcoming unless stated
func ExecuteSaveMatch(ctx context.Context, input SaveMatchInput, deps SaveMatchDeps) (match.Match, error) {
	m := input.Match

	if m.Status == "" {
		m.Status = match.StatusUpcoming
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, err
	}

	created := m.ID == ""
	if created {
		m.ID = deps.GenerateID()
	}

	if err := deps.MatchStore.Save(ctx, m); err != nil {
		return match.Match{}, err
	}

	event := "match_updated"
	if created {
		event = "match_created"
	}
	slog.Info("match_event", "event", event, "match_id", m.ID, "rival", m.Rival, "date", m.Date)
	return m, nil
}

// RecordResultInput carries the final score for a fixture.
type RecordResultInput struct {
	MatchID   string
	ScoreHome int
	ScoreAway int
}

// ExecuteRecordResult records a final score and flips the match to finished.
// PRE: MatchID names an existing match; scores are >= 0
// POST: Match is finished with the given score
func ExecuteRecordResult(ctx context.Context, input RecordResultInput, deps SaveMatchDeps) (match.Match, error) {
	if input.MatchID == "" {
		return match.Match{}, errors.New("match id is required")
	}

	m, err := deps.MatchStore.GetByID(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, errors.New("match not found")
	}
	if err := m.Finish(input.ScoreHome, input.ScoreAway); err != nil {
		return match.Match{}, err
	}
	if err := deps.MatchStore.Save(ctx, m); err != nil {
		return match.Match{}, err
	}

	slog.Info("match_event", "event", "result_recorded", "match_id", m.ID, "score", input.ScoreHome, "score_away", input.ScoreAway)
	return m, nil
}

// SaveStatInput carries one player's line for a match.
type SaveStatInput struct {
	Stat match.Stat
}

// SaveStatDeps holds dependencies for SaveStat.
type SaveStatDeps struct {
	MatchStore  MatchStoreForOrchestrator
	StatStore   StatStoreForOrchestrator
	PlayerStore PlayerStoreForOrchestrator
	GenerateID  func() string
}

// ExecuteSaveStat upserts a stat line for a finished match.
// PRE: Stat references an existing finished match and an existing player
// POST: One line per (match, player) exists with the given counters
func ExecuteSaveStat(ctx context.Context, input SaveStatInput, deps SaveStatDeps) (match.Stat, error) {
	s := input.Stat

	if err := s.Validate(); err != nil {
		return match.Stat{}, err
	}

	m, err := deps.MatchStore.GetByID(ctx, s.MatchID)
	if err != nil {
		return match.Stat{}, errors.New("match not found")
	}
	if !m.IsFinished() {
		return match.Stat{}, errors.New("stats can only be recorded for finished matches")
	}
	if _, err := deps.PlayerStore.GetByID(ctx, s.PlayerID); err != nil {
		return match.Stat{}, errors.New("player not found")
	}

	if s.ID == "" {
		s.ID = deps.GenerateID()
	}
	if err := deps.StatStore.Save(ctx, s); err != nil {
		return match.Stat{}, err
	}

	slog.Info("match_event", "event", "stat_recorded", "match_id", s.MatchID, "player_id", s.PlayerID, "goals", s.Goals)
	return s, nil
}

// DeleteMatchDeps holds dependencies for DeleteMatch.
type DeleteMatchDeps struct {
	MatchStore MatchStoreForOrchestrator
}

// ExecuteDeleteMatch removes a fixture and its stat lines.
// PRE: id names an existing match
// POST: Match and dependent stats are gone
func ExecuteDeleteMatch(ctx context.Context, id string, deps DeleteMatchDeps) error {
	if id == "" {
		return errors.New("match id is required")
	}
	if _, err := deps.MatchStore.GetByID(ctx, id); err != nil {
		return errors.New("match not found")
	}
	if err := deps.MatchStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("match_event", "event", "match_deleted", "match_id", id)
	return nil
}
