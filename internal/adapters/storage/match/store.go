package match

import (
	"context"

	domain "clubdesk/internal/domain/match"
)

// Store persists Match state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Match, error)
	Save(ctx context.Context, value domain.Match) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Match, error)
}

// StatStore persists per-match player stat lines.
type StatStore interface {
	Save(ctx context.Context, value domain.Stat) error
	Delete(ctx context.Context, id string) error
	ListByMatch(ctx context.Context, matchID string) ([]domain.Stat, error)
	ListByPlayer(ctx context.Context, playerID string) ([]domain.Stat, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Limit  int
	Offset int
	Status string
}
