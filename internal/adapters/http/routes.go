package web

import (
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/domain/account"
)

// registerRoutes wires every API endpoint onto the mux.
// Auth runs before the mux, so handlers can read the session from context;
// staff-only and admin-only guards are applied here.
func registerRoutes(mux *http.ServeMux) {
	staff := middleware.RequireRole(account.RoleAdmin, account.RoleHelper)
	admin := middleware.RequireRole(account.RoleAdmin)

	// Session
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)
	mux.Handle("/api/me", staff(http.HandlerFunc(handleMe)))

	// Roster
	mux.Handle("/api/players", staff(http.HandlerFunc(handlePlayers)))
	mux.Handle("/api/players/get", staff(http.HandlerFunc(handlePlayerByID)))
	mux.Handle("/api/players/delete", staff(http.HandlerFunc(handlePlayerDelete)))
	mux.Handle("/api/players/report", staff(http.HandlerFunc(handlePlayerReport)))

	// Alerts and dashboard
	mux.Handle("/api/alerts", staff(http.HandlerFunc(handleAlerts)))
	mux.Handle("/api/dashboard/summary", staff(http.HandlerFunc(handleDashboardSummary)))

	// Club settings (update branch enforces admin itself)
	mux.Handle("/api/settings", staff(http.HandlerFunc(handleSettings)))

	// Matches
	mux.Handle("/api/matches", staff(http.HandlerFunc(handleMatches)))
	mux.Handle("/api/matches/result", staff(http.HandlerFunc(handleMatchResult)))
	mux.Handle("/api/matches/stats", staff(http.HandlerFunc(handleMatchStats)))
	mux.Handle("/api/matches/delete", staff(http.HandlerFunc(handleMatchDelete)))

	// Payments
	mux.Handle("/api/payments", staff(http.HandlerFunc(handlePayments)))
	mux.Handle("/api/payments/paid", staff(http.HandlerFunc(handlePaymentPaid)))
	mux.Handle("/api/payments/delete", staff(http.HandlerFunc(handlePaymentDelete)))

	// File uploads (player photos, document scans)
	mux.Handle("/api/uploads", staff(http.HandlerFunc(handleUpload)))

	// Presence
	mux.Handle("/api/presence/heartbeat", staff(http.HandlerFunc(handlePresenceHeartbeat)))

	// Admin
	mux.Handle("/api/presence/online", admin(http.HandlerFunc(handlePresenceOnline)))
	mux.Handle("/api/accounts", admin(http.HandlerFunc(handleAccounts)))
	mux.Handle("/api/accounts/delete", admin(http.HandlerFunc(handleAccountDelete)))
	mux.Handle("/api/notify/digest", admin(http.HandlerFunc(handleExpiryDigest)))
	mux.Handle("/api/admin/perf", admin(http.HandlerFunc(handlePerfSnapshot)))
}
