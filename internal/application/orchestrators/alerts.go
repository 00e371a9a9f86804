package orchestrators

import (
	"context"
	"time"

	playerStore "clubdesk/internal/adapters/storage/player"
	"clubdesk/internal/domain/alert"
)

// PaymentTotaler exposes the pending-payment rollup used on the dashboard.
type PaymentTotaler interface {
	PendingTotal(ctx context.Context) (int, error)
}

// ListAlertsDeps holds dependencies for ListAlerts.
type ListAlertsDeps struct {
	PlayerStore   PlayerStoreForOrchestrator
	SettingsStore SettingsStoreForOrchestrator
	Now           func() time.Time
}

// ExecuteListAlerts walks the full roster and returns every document alert.
// POST: Alerts in roster order, id card before health card per player
func ExecuteListAlerts(ctx context.Context, deps ListAlertsDeps) ([]alert.Alert, error) {
	roster, err := deps.PlayerStore.List(ctx, playerStore.ListFilter{})
	if err != nil {
		return nil, err
	}
	cfg, err := deps.SettingsStore.Get(ctx)
	if err != nil {
		return nil, err
	}
	return alert.Aggregate(roster, cfg, deps.Now())
}

// DashboardSummary is the landing-page rollup.
type DashboardSummary struct {
	PlayerCount         int
	AlertCount          int
	TopAlerts           []alert.Alert
	RemainingAlertCount int
	PendingPaymentCents int
}

// DashboardTopAlerts is how many alerts the landing page shows inline.
const DashboardTopAlerts = 5

// DashboardDeps holds dependencies for the dashboard summary.
type DashboardDeps struct {
	PlayerStore   PlayerStoreForOrchestrator
	SettingsStore SettingsStoreForOrchestrator
	PaymentStore  PaymentTotaler
	Now           func() time.Time
}

// ExecuteDashboardSummary assembles the landing-page numbers in one pass.
// POST: TopAlerts holds at most DashboardTopAlerts entries, in alert order
func ExecuteDashboardSummary(ctx context.Context, deps DashboardDeps) (DashboardSummary, error) {
	roster, err := deps.PlayerStore.List(ctx, playerStore.ListFilter{})
	if err != nil {
		return DashboardSummary{}, err
	}
	cfg, err := deps.SettingsStore.Get(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	alerts, err := alert.Aggregate(roster, cfg, deps.Now())
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		PlayerCount: len(roster),
		AlertCount:  len(alerts),
		TopAlerts:   alerts,
	}
	if len(alerts) > DashboardTopAlerts {
		summary.TopAlerts = alerts[:DashboardTopAlerts]
		summary.RemainingAlertCount = len(alerts) - DashboardTopAlerts
	}

	if deps.PaymentStore != nil {
		total, err := deps.PaymentStore.PendingTotal(ctx)
		if err != nil {
			return DashboardSummary{}, err
		}
		summary.PendingPaymentCents = total
	}

	return summary, nil
}
