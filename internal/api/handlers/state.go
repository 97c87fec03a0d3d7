package handlers

import (
	"coldchain-dashboard/internal/api/dto"
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// StateHandler exposes the controller state as JSON for scripted clients.
type StateHandler struct {
	Dashboard *services.Dashboard
	Formatter view.TimeFormatter
	Log       *slog.Logger
}

func (h *StateHandler) State(w http.ResponseWriter, r *http.Request) {
	res, err := dto.NewStateResponse(h.Dashboard.State(), h.Formatter)
	if err != nil {
		h.Log.Error("Failed to build state", "error", err)
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(h.Log, w, r, http.StatusOK, res)
}

// SensorData performs a row click and returns the resulting inspection.
func (h *StateHandler) SensorData(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.Dashboard.SelectDelivery(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrDeliveryNotFound):
		writeError(h.Log, w, r, http.StatusNotFound, "delivery not found")
		return
	case err != nil:
		writeError(h.Log, w, r, http.StatusBadGateway, "failed to fetch sensor data")
		return
	}

	writeJSON(h.Log, w, r, http.StatusOK, dto.NewInspectionResponse(h.Dashboard.State()))
}
