package web

import (
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/orchestrators"
)

// handlePresenceHeartbeat handles POST /api/presence/heartbeat.
// The frontend pings this periodically while a tab is open.
func handlePresenceHeartbeat(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if presenceTracker == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := presenceTracker.Heartbeat(r.Context(), sess.AccountID); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePresenceOnline handles GET /api/presence/online.
// Returns the accounts with a live heartbeat.
func handlePresenceOnline(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if presenceTracker == nil {
		writeJSON(w, []string{})
		return
	}

	ids, err := presenceTracker.Online(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, ids)
}

// handleExpiryDigest handles POST /api/notify/digest. Admin only.
// Emails the current alert list to the given recipients.
func handleExpiryDigest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if emailSender == nil {
		http.Error(w, "email delivery is not configured", http.StatusServiceUnavailable)
		return
	}

	input := orchestrators.ExpiryDigestInput{}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	count, err := orchestrators.ExecuteSendExpiryDigest(r.Context(), input, orchestrators.ExpiryDigestDeps{
		PlayerStore:   stores.PlayerStore,
		SettingsStore: stores.SettingsStore,
		Sender:        emailSender,
		From:          emailFromAddress,
		ReplyTo:       emailReplyTo,
		Now:           timeNow,
	})
	if err != nil {
		orchestratorErrorOrValidation(w, err)
		return
	}
	writeJSON(w, map[string]int{"alerts": count})
}
