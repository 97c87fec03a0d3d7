package handlers

import (
	"coldchain-dashboard/internal/platform/obs"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Clock is the shared display clock.
type Clock interface {
	Now() time.Time
	Subscribe() (<-chan time.Time, func())
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode failed",
			"method", r.Method, "path", r.URL.Path, "req_id", obs.RequestID(r.Context()), "error", err)
	}
}

func writeError(log *slog.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(log, w, r, status, map[string]string{"error": msg})
}

// syncedParam marks a redirect issued after the controller already re-fetched
// (or deliberately left) both collections, so the page skips its mount fetch.
const syncedParam = "synced"

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/?"+syncedParam+"=1", http.StatusSeeOther)
}
