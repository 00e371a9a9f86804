package alert

import (
	"time"

	"clubdesk/internal/domain/document"
	"clubdesk/internal/domain/player"
	"clubdesk/internal/domain/settings"
)

// Alert flags one (player, document type) pair that needs attention.
// Alerts are derived for display and notification, never persisted.
type Alert struct {
	PlayerID     string
	PlayerName   string
	DocType      string
	Status       document.Status
	ContactPhone string
}

// Aggregate walks the roster and collects one alert per non-current
// document. The id card is evaluated against the id-card window and the
// health card against the health-card window, independently, so a player
// may contribute zero, one, or two alerts.
//
// Ordering is roster order with a player's id-card alert before their
// health-card alert; no further sorting is applied.
// PRE: roster is an immutable snapshot; it is not mutated
// POST: len(result) <= 2*len(roster); no alert has StatusCurrent
func Aggregate(roster []player.Player, s settings.Settings, today time.Time) ([]Alert, error) {
	alerts := make([]Alert, 0, len(roster))

	for i := range roster {
		p := &roster[i]

		idExpiry, err := document.ParseDate(document.TypeIDCard, p.IDCardExpiry)
		if err != nil {
			return nil, err
		}
		healthExpiry, err := document.ParseDate(document.TypeHealthCard, p.HealthCardExpiry)
		if err != nil {
			return nil, err
		}

		if st := document.Classify(idExpiry, s.IDCardAlertDays, today); st != document.StatusCurrent {
			alerts = append(alerts, Alert{
				PlayerID:     p.ID,
				PlayerName:   p.FullName,
				DocType:      document.TypeIDCard,
				Status:       st,
				ContactPhone: p.ContactPhone(),
			})
		}
		if st := document.Classify(healthExpiry, s.HealthCardAlertDays, today); st != document.StatusCurrent {
			alerts = append(alerts, Alert{
				PlayerID:     p.ID,
				PlayerName:   p.FullName,
				DocType:      document.TypeHealthCard,
				Status:       st,
				ContactPhone: p.ContactPhone(),
			})
		}
	}

	return alerts, nil
}
