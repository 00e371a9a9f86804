package web

import (
	"net/http"
	"strconv"

	matchStore "clubdesk/internal/adapters/storage/match"
	"clubdesk/internal/application/orchestrators"
	matchDomain "clubdesk/internal/domain/match"
)

// handleMatches handles GET (list) and POST (create/update) for /api/matches.
func handleMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		filter := matchStore.ListFilter{
			Status: r.URL.Query().Get("status"),
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

		matches, err := stores.MatchStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}
		if matches == nil {
			matches = []matchDomain.Match{}
		}
		writeJSON(w, matches)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SaveMatchInput{}
		if err := strictDecode(r, &input.Match); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		m, err := orchestrators.ExecuteSaveMatch(ctx, input, orchestrators.SaveMatchDeps{
			MatchStore: stores.MatchStore,
			GenerateID: generateID,
		})
		if err != nil {
			orchestratorErrorOrValidation(w, err)
			return
		}
		writeJSON(w, m)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMatchResult handles POST /api/matches/result.
// Moves an upcoming fixture to finished with the final score.
func handleMatchResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.RecordResultInput{}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	m, err := orchestrators.ExecuteRecordResult(r.Context(), input, orchestrators.SaveMatchDeps{
		MatchStore: stores.MatchStore,
		GenerateID: generateID,
	})
	if err != nil {
		orchestratorErrorOrValidation(w, err)
		return
	}
	writeJSON(w, m)
}

// handleMatchStats handles GET (list by match) and POST (record) for /api/matches/stats.
func handleMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		matchID := r.URL.Query().Get("match_id")
		if matchID == "" {
			http.Error(w, "match_id is required", http.StatusBadRequest)
			return
		}

		lines, err := stores.StatStore.ListByMatch(ctx, matchID)
		if err != nil {
			internalError(w, err)
			return
		}
		if lines == nil {
			lines = []matchDomain.Stat{}
		}
		writeJSON(w, lines)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SaveStatInput{}
		if err := strictDecode(r, &input.Stat); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		s, err := orchestrators.ExecuteSaveStat(ctx, input, orchestrators.SaveStatDeps{
			MatchStore:  stores.MatchStore,
			StatStore:   stores.StatStore,
			PlayerStore: stores.PlayerStore,
			GenerateID:  generateID,
		})
		if err != nil {
			orchestratorErrorOrValidation(w, err)
			return
		}
		writeJSON(w, s)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMatchDelete handles POST /api/matches/delete?id=X.
// Removing a fixture also removes its stat lines.
func handleMatchDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.DeleteMatchDeps{MatchStore: stores.MatchStore}
	if err := orchestrators.ExecuteDeleteMatch(r.Context(), id, deps); err != nil {
		orchestratorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
