package orchestrators

import (
	"context"
	"errors"
	"time"

	"clubdesk/internal/application/report"
	"clubdesk/internal/domain/contact"
)

// PlayerReportInput carries input for the player report orchestrator.
type PlayerReportInput struct {
	PlayerID string
	Language string // empty means the club default (Spanish)
}

// PlayerReportResult is the rendered report plus the share link for it.
type PlayerReportResult struct {
	Text         string
	ContactPhone string
	Link         string
	Direct       bool // true when Link targets a guardian phone
}

// PlayerReportDeps holds dependencies for the player report.
type PlayerReportDeps struct {
	PlayerStore   PlayerStoreForOrchestrator
	SettingsStore SettingsStoreForOrchestrator
	Builder       *report.Builder
	Now           func() time.Time
}

// ExecutePlayerReport renders a player's record and a WhatsApp link for it.
// When the guardian phone is unusable the link degrades to a recipient-less
// compose link and Direct is false.
// PRE: PlayerID names an existing player
// POST: Text is non-empty; Link always opens a compose window
func ExecutePlayerReport(ctx context.Context, input PlayerReportInput, deps PlayerReportDeps) (PlayerReportResult, error) {
	if input.PlayerID == "" {
		return PlayerReportResult{}, errors.New("player id is required")
	}

	p, err := deps.PlayerStore.GetByID(ctx, input.PlayerID)
	if err != nil {
		return PlayerReportResult{}, errors.New("player not found")
	}
	cfg, err := deps.SettingsStore.Get(ctx)
	if err != nil {
		return PlayerReportResult{}, err
	}

	text := deps.Builder.Build(p, cfg, deps.Now(), input.Language)
	result := PlayerReportResult{
		Text:         text,
		ContactPhone: p.ContactPhone(),
	}

	if link, ok := contact.BuildLink(result.ContactPhone, text); ok {
		result.Link = link
		result.Direct = true
	} else {
		result.Link = contact.ShareLink(text)
	}
	return result, nil
}
