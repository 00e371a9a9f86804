package player

import (
	"context"

	domain "clubdesk/internal/domain/player"
)

// Store persists Player state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Player, error)
	Save(ctx context.Context, value domain.Player) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Player, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List operations.
// The zero value lists the whole roster in name order.
type ListFilter struct {
	Limit    int
	Offset   int
	Position string
	Search   string
}
