package handlers

import (
	"coldchain-dashboard/internal/view"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ClockHandler streams the display clock as server-sent events.
type ClockHandler struct {
	Clock     Clock
	Formatter view.TimeFormatter
	Log       *slog.Logger
}

// Stream holds one clock subscription per connection and releases it when the
// client goes away.
func (h *ClockHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// The stream outlives any server-wide write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	ticks, cancel := h.Clock.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.Log.Error("Clock stream unsupported", "error", err)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case now, ok := <-ticks:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", h.Formatter.Format(now)); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
