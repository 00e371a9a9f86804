package web

import (
	"net/http"
	"strconv"
	"time"
)

// handlePerfSnapshot handles GET /api/admin/perf?minutes=60&top=10. Admin only.
// Returns latency percentiles and the slowest paths and queries.
func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if perfCollector == nil {
		http.Error(w, "perf collection is not enabled", http.StatusServiceUnavailable)
		return
	}

	minutes := 60
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minutes = n
		}
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	since := timeNow().Add(-time.Duration(minutes) * time.Minute)
	writeJSON(w, perfCollector.Snapshot(since, topN))
}
