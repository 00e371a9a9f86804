package settings

import (
	"context"

	domain "clubdesk/internal/domain/settings"
)

// SingletonID is the fixed row id for the club-wide settings.
const SingletonID = "club"

// Store persists the single Settings row.
type Store interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, value domain.Settings) error
}
