package web

import (
	"net/http"
	"strconv"

	playerStore "clubdesk/internal/adapters/storage/player"
	"clubdesk/internal/application/orchestrators"
	playerDomain "clubdesk/internal/domain/player"
)

// handlePlayers handles GET (list) and POST (create/update) for /api/players.
func handlePlayers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		filter := playerStore.ListFilter{
			Search:   r.URL.Query().Get("q"),
			Position: r.URL.Query().Get("position"),
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				filter.Offset = n
			}
		}

		roster, err := stores.PlayerStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}
		if roster == nil {
			roster = []playerDomain.Player{}
		}
		writeJSON(w, roster)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SavePlayerInput{}
		if err := strictDecode(r, &input.Player); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		deps := orchestrators.SavePlayerDeps{
			PlayerStore: stores.PlayerStore,
			GenerateID:  generateID,
			Now:         timeNow,
		}
		p, err := orchestrators.ExecuteSavePlayer(ctx, input, deps)
		if err != nil {
			orchestratorErrorOrValidation(w, err)
			return
		}
		writeJSON(w, p)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePlayerByID handles GET /api/players/get?id=X.
func handlePlayerByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	p, err := stores.PlayerStore.GetByID(r.Context(), id)
	if err != nil {
		orchestratorError(w, err)
		return
	}
	writeJSON(w, p)
}

// handlePlayerDelete handles POST /api/players/delete?id=X.
// Removing a player also removes their match stats and payments.
func handlePlayerDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.DeletePlayerDeps{PlayerStore: stores.PlayerStore}
	if err := orchestrators.ExecuteDeletePlayer(r.Context(), id, deps); err != nil {
		orchestratorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePlayerReport handles GET /api/players/report?id=X&lang=es.
// Returns the rendered record text plus the WhatsApp compose link.
func handlePlayerReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecutePlayerReport(r.Context(), orchestrators.PlayerReportInput{
		PlayerID: id,
		Language: r.URL.Query().Get("lang"),
	}, orchestrators.PlayerReportDeps{
		PlayerStore:   stores.PlayerStore,
		SettingsStore: stores.SettingsStore,
		Builder:       reportBuilder,
		Now:           timeNow,
	})
	if err != nil {
		orchestratorError(w, err)
		return
	}
	writeJSON(w, result)
}
