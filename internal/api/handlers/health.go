package handlers

import (
	"log/slog"
	"net/http"
)

// Health provides a minimal liveness check endpoint.
func Health(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := map[string]string{"status": "ok"}
		writeJSON(log, w, r, http.StatusOK, res)
	}
}
