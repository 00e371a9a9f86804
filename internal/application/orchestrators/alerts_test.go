package orchestrators

import (
	"context"
	"testing"

	"clubdesk/internal/domain/document"
	"clubdesk/internal/domain/payment"
	"clubdesk/internal/domain/player"
)

// rosterWithAlerts seeds three players producing five alerts on 2026-09-01:
// Ana (expired id + missing health), Beto (missing both), Carla (current both).
func rosterWithAlerts(store *mockPlayerStore) {
	store.players["p1"] = player.Player{
		ID: "p1", FullName: "Ana García", MotherPhone: "099111222",
		IDCardExpiry: "2026-08-01",
	}
	store.players["p2"] = player.Player{
		ID: "p2", FullName: "Beto Díaz", FatherPhone: "099333444",
	}
	store.players["p3"] = player.Player{
		ID: "p3", FullName: "Carla Souto",
		IDCardExpiry: "2027-06-01", HealthCardExpiry: "2027-06-01",
	}
}

// TestExecuteListAlerts tests the roster-wide alert walk.
func TestExecuteListAlerts(t *testing.T) {
	playerSt := newMockPlayerStore()
	rosterWithAlerts(playerSt)

	alerts, err := ExecuteListAlerts(context.Background(), ListAlertsDeps{
		PlayerStore:   playerSt,
		SettingsStore: &mockSettingsStore{},
		Now:           fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 4 {
		t.Fatalf("len(alerts) = %d, want 4", len(alerts))
	}
	// Ana first (roster order), id card before health card
	if alerts[0].PlayerID != "p1" || alerts[0].DocType != document.TypeIDCard || alerts[0].Status != document.StatusExpired {
		t.Errorf("alerts[0] = %+v", alerts[0])
	}
	if alerts[1].PlayerID != "p1" || alerts[1].DocType != document.TypeHealthCard || alerts[1].Status != document.StatusMissing {
		t.Errorf("alerts[1] = %+v", alerts[1])
	}
	if alerts[2].PlayerID != "p2" || alerts[3].PlayerID != "p2" {
		t.Errorf("alerts[2:4] should be Beto's, got %+v %+v", alerts[2], alerts[3])
	}
	if alerts[2].ContactPhone != "099333444" {
		t.Errorf("Beto contact = %q, want father's phone", alerts[2].ContactPhone)
	}
}

// TestExecuteDashboardSummary tests the top-5 cut and the rollups.
func TestExecuteDashboardSummary(t *testing.T) {
	playerSt := newMockPlayerStore()
	rosterWithAlerts(playerSt)
	// Fourth player pushes the alert count past the inline limit
	playerSt.players["p4"] = player.Player{ID: "p4", FullName: "Diego Núñez"}

	paymentSt := newMockPaymentStore()
	paymentSt.payments["pay1"] = payment.Payment{ID: "pay1", PlayerID: "p1", Amount: 150000, Category: payment.CategoryDues, Status: payment.StatusPending, DueDate: "2026-09-10"}
	paymentSt.payments["pay2"] = payment.Payment{ID: "pay2", PlayerID: "p2", Amount: 80000, Category: payment.CategoryGear, Status: payment.StatusPaid, DueDate: "2026-08-01", PaidDate: "2026-08-01"}

	summary, err := ExecuteDashboardSummary(context.Background(), DashboardDeps{
		PlayerStore:   playerSt,
		SettingsStore: &mockSettingsStore{},
		PaymentStore:  paymentSt,
		Now:           fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.PlayerCount != 4 {
		t.Errorf("PlayerCount = %d, want 4", summary.PlayerCount)
	}
	if summary.AlertCount != 6 {
		t.Errorf("AlertCount = %d, want 6", summary.AlertCount)
	}
	if len(summary.TopAlerts) != DashboardTopAlerts {
		t.Errorf("len(TopAlerts) = %d, want %d", len(summary.TopAlerts), DashboardTopAlerts)
	}
	if summary.RemainingAlertCount != 1 {
		t.Errorf("RemainingAlertCount = %d, want 1", summary.RemainingAlertCount)
	}
	if summary.PendingPaymentCents != 150000 {
		t.Errorf("PendingPaymentCents = %d, want 150000", summary.PendingPaymentCents)
	}
}

// TestExecuteListAlerts_MalformedStoredDate tests the error path for bad data.
func TestExecuteListAlerts_MalformedStoredDate(t *testing.T) {
	playerSt := newMockPlayerStore()
	playerSt.players["p1"] = player.Player{ID: "p1", FullName: "Ana", HealthCardExpiry: "soon"}

	_, err := ExecuteListAlerts(context.Background(), ListAlertsDeps{
		PlayerStore:   playerSt,
		SettingsStore: &mockSettingsStore{},
		Now:           fixedNow,
	})
	if err == nil {
		t.Fatal("expected error for malformed stored expiry")
	}
}
