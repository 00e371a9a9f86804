package web

import (
	"net/http"

	"clubdesk/internal/application/orchestrators"
	alertDomain "clubdesk/internal/domain/alert"
)

// handleAlerts handles GET /api/alerts.
// Returns every document alert across the roster, in roster order with the
// id card listed before the health card for each player.
func handleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	alerts, err := orchestrators.ExecuteListAlerts(r.Context(), orchestrators.ListAlertsDeps{
		PlayerStore:   stores.PlayerStore,
		SettingsStore: stores.SettingsStore,
		Now:           timeNow,
	})
	if err != nil {
		orchestratorError(w, err)
		return
	}
	if alerts == nil {
		alerts = []alertDomain.Alert{}
	}
	writeJSON(w, alerts)
}

// handleDashboardSummary handles GET /api/dashboard/summary.
func handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	summary, err := orchestrators.ExecuteDashboardSummary(r.Context(), orchestrators.DashboardDeps{
		PlayerStore:   stores.PlayerStore,
		SettingsStore: stores.SettingsStore,
		PaymentStore:  stores.PaymentStore,
		Now:           timeNow,
	})
	if err != nil {
		orchestratorError(w, err)
		return
	}
	writeJSON(w, summary)
}
