package settings

import (
	"errors"
	"time"
)

// Alert window bounds in days. Exactly one settings row exists club-wide.
const (
	MinAlertDays     = 1
	MaxAlertDays     = 365
	DefaultAlertDays = 30
)

// Settings holds the club-wide alert configuration.
type Settings struct {
	ID                  string
	IDCardAlertDays     int
	HealthCardAlertDays int
	UpdatedAt           time.Time
}

// Default returns the settings used when no row has been saved yet.
func Default() Settings {
	return Settings{
		IDCardAlertDays:     DefaultAlertDays,
		HealthCardAlertDays: DefaultAlertDays,
	}
}

// Validate checks if the Settings has valid data.
// PRE: Settings struct is initialized
// POST: Returns error if either window is outside [1, 365]
func (s *Settings) Validate() error {
	if s.IDCardAlertDays < MinAlertDays || s.IDCardAlertDays > MaxAlertDays {
		return errors.New("id card alert window must be between 1 and 365 days")
	}
	if s.HealthCardAlertDays < MinAlertDays || s.HealthCardAlertDays > MaxAlertDays {
		return errors.New("health card alert window must be between 1 and 365 days")
	}
	return nil
}
