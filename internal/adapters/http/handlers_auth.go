package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/orchestrators"
)

// handleLogin handles POST /api/login.
// POST: On success a session cookie is set and account info returned.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.LoginInput{}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	deps := orchestrators.LoginDeps{
		AccountStore: stores.AccountStore,
		Now:          timeNow,
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		if errors.Is(err, orchestrators.ErrAccountLocked) {
			http.Error(w, err.Error(), http.StatusLocked)
			return
		}
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email, result.Role, result.FullName)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)

	writeJSON(w, map[string]any{
		"accountID": result.AccountID,
		"email":     result.Email,
		"role":      result.Role,
		"fullName":  result.FullName,
	})
}

// handleLogout handles POST /api/logout.
// POST: Session removed, cookie cleared, presence marked offline.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok && presenceTracker != nil {
		if err := presenceTracker.Offline(r.Context(), sess.AccountID); err != nil {
			slog.Warn("presence_offline_failed", "account_id", sess.AccountID, "error", err.Error())
		}
	}

	cookie, err := r.Cookie(middleware.SessionCookieName())
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleMe handles GET /api/me.
func handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]any{
		"accountID": sess.AccountID,
		"email":     sess.Email,
		"role":      sess.Role,
		"fullName":  sess.FullName,
	})
}

// handleAccounts handles GET (list) and POST (create) for /api/accounts.
// Admin only.
func handleAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		accounts, err := stores.AccountStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		type accountView struct {
			ID        string    `json:"id"`
			Email     string    `json:"email"`
			Role      string    `json:"role"`
			FullName  string    `json:"fullName"`
			CreatedAt time.Time `json:"createdAt"`
		}
		views := make([]accountView, 0, len(accounts))
		for _, a := range accounts {
			views = append(views, accountView{
				ID: a.ID, Email: a.Email, Role: a.Role,
				FullName: a.FullName, CreatedAt: a.CreatedAt,
			})
		}
		writeJSON(w, views)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.CreateAccountInput{}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		deps := orchestrators.CreateAccountDeps{AccountStore: stores.AccountStore}
		id, err := orchestrators.ExecuteCreateAccount(ctx, input, deps)
		if err != nil {
			if errors.Is(err, orchestrators.ErrEmailAlreadyExists) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			validationError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, map[string]string{"id": id})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAccountDelete handles POST /api/accounts/delete?id=X. Admin only.
// An admin cannot remove their own account.
func handleAccountDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok && sess.AccountID == id {
		http.Error(w, "cannot delete your own account", http.StatusBadRequest)
		return
	}

	if err := stores.AccountStore.Delete(r.Context(), id); err != nil {
		internalError(w, err)
		return
	}
	slog.Info("auth_event", "action", "account_deleted", "account_id", id)
	w.WriteHeader(http.StatusNoContent)
}
