package web

import (
	"log/slog"
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/orchestrators"
)

// handleSettings handles GET (read) and POST (update) for /api/settings.
// Reading is open to any logged-in user; updating is admin only.
func handleSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deps := orchestrators.SettingsDeps{
		SettingsStore: stores.SettingsStore,
		Now:           timeNow,
	}

	if r.Method == "GET" {
		s, err := orchestrators.ExecuteGetSettings(ctx, deps)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, s)
		return
	}

	if r.Method == "POST" {
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		input := orchestrators.UpdateSettingsInput{}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		s, err := orchestrators.ExecuteUpdateSettings(ctx, input, deps)
		if err != nil {
			validationError(w, err)
			return
		}
		slog.Info("settings_event", "action", "updated",
			"id_card_days", s.IDCardAlertDays, "health_card_days", s.HealthCardAlertDays)
		writeJSON(w, s)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
