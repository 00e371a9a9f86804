package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubdesk/internal/domain/settings"
)

// SettingsStoreForOrchestrator defines the store interface needed by settings orchestrators.
type SettingsStoreForOrchestrator interface {
	Get(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
}

// SettingsDeps holds dependencies for the settings orchestrators.
type SettingsDeps struct {
	SettingsStore SettingsStoreForOrchestrator
	Now           func() time.Time
}

// ExecuteGetSettings returns the club alert configuration.
// POST: Returns saved settings, or the defaults when none exist
func ExecuteGetSettings(ctx context.Context, deps SettingsDeps) (settings.Settings, error) {
	return deps.SettingsStore.Get(ctx)
}

// UpdateSettingsInput carries the new alert windows.
type UpdateSettingsInput struct {
	IDCardAlertDays     int
	HealthCardAlertDays int
}

// ExecuteUpdateSettings replaces the club alert configuration.
// PRE: Both windows are within [1, 365]
// POST: The singleton settings row holds the new windows
func ExecuteUpdateSettings(ctx context.Context, input UpdateSettingsInput, deps SettingsDeps) (settings.Settings, error) {
	s := settings.Settings{
		IDCardAlertDays:     input.IDCardAlertDays,
		HealthCardAlertDays: input.HealthCardAlertDays,
		UpdatedAt:           deps.Now(),
	}

	if err := s.Validate(); err != nil {
		return settings.Settings{}, err
	}

	if err := deps.SettingsStore.Save(ctx, s); err != nil {
		return settings.Settings{}, err
	}

	slog.Info("settings_event", "event", "settings_updated",
		"id_card_days", s.IDCardAlertDays, "health_card_days", s.HealthCardAlertDays)
	return s, nil
}
