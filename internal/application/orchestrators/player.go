package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	playerStore "clubdesk/internal/adapters/storage/player"
	"clubdesk/internal/domain/player"
)

// PlayerStoreForOrchestrator defines the store interface needed by player orchestrators.
type PlayerStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (player.Player, error)
	Save(ctx context.Context, p player.Player) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter playerStore.ListFilter) ([]player.Player, error)
}

// SavePlayerInput carries input for the save player orchestrator. An empty
// ID means create; otherwise the existing row is replaced.
type SavePlayerInput struct {
	Player player.Player
}

// SavePlayerDeps holds dependencies for SavePlayer.
type SavePlayerDeps struct {
	PlayerStore PlayerStoreForOrchestrator
	GenerateID  func() string
	Now         func() time.Time
}

// ExecuteSavePlayer creates or updates a roster entry.
// PRE: Player passes domain validation (name, dates, phone lengths)
// POST: Player persisted; new players get a generated ID and CreatedAt
func ExecuteSavePlayer(ctx context.Context, input SavePlayerInput, deps SavePlayerDeps) (player.Player, error) {
	p := input.Player

	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	created := p.ID == ""
	if created {
		p.ID = deps.GenerateID()
		p.CreatedAt = deps.Now()
	} else {
		existing, err := deps.PlayerStore.GetByID(ctx, p.ID)
		if err != nil {
			return player.Player{}, errors.New("player not found")
		}
		p.CreatedAt = existing.CreatedAt
	}

	if err := deps.PlayerStore.Save(ctx, p); err != nil {
		return player.Player{}, err
	}

	event := "player_updated"
	if created {
		event = "player_created"
	}
	slog.Info("roster_event", "event", event, "player_id", p.ID, "name", p.FullName)
	return p, nil
}

// DeletePlayerDeps holds dependencies for DeletePlayer.
type DeletePlayerDeps struct {
	PlayerStore PlayerStoreForOrchestrator
}

// ExecuteDeletePlayer removes a roster entry and its dependent rows.
// PRE: id names an existing player
// POST: Player, stats, and payments are gone
func ExecuteDeletePlayer(ctx context.Context, id string, deps DeletePlayerDeps) error {
	if id == "" {
		return errors.New("player id is required")
	}
	if _, err := deps.PlayerStore.GetByID(ctx, id); err != nil {
		return errors.New("player not found")
	}
	if err := deps.PlayerStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("roster_event", "event", "player_deleted", "player_id", id)
	return nil
}
