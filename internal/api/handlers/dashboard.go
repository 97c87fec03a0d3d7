package handlers

import (
	"bytes"
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// DashboardHandler serves the HTML dashboard. Every action runs against the
// shared controller and lands back on the page through a redirect.
type DashboardHandler struct {
	Dashboard *services.Dashboard
	Renderer  *view.Renderer
	Clock     Clock
	Formatter view.TimeFormatter
	Log       *slog.Logger
}

// Show mounts the dashboard: both collections are fetched before rendering,
// except when landing from an action that already synced them.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has(syncedParam) {
		h.Dashboard.Load(r.Context())
	}
	h.render(w, r, http.StatusOK, "")
}

func (h *DashboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	form, err := decodeDeliveryForm(r)
	h.Dashboard.UpdateForm(form.ToDomain())
	if err != nil {
		h.Log.Warn("Rejected delivery form", "error", err)
		h.render(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// A failed submit keeps the form and is logged by the controller.
	_ = h.Dashboard.SubmitDelivery(r.Context())
	redirectHome(w, r)
}

func (h *DashboardHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	_ = h.Dashboard.SimulateDelivery(r.Context(), mux.Vars(r)["id"])
	redirectHome(w, r)
}

// Select is the row click.
func (h *DashboardHandler) Select(w http.ResponseWriter, r *http.Request) {
	err := h.Dashboard.SelectDelivery(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, domain.ErrDeliveryNotFound) {
		writeError(h.Log, w, r, http.StatusNotFound, "delivery not found")
		return
	}
	redirectHome(w, r)
}

func (h *DashboardHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.Dashboard.CloseModal()
	redirectHome(w, r)
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, status int, formError string) {
	page, err := view.NewPage(h.Dashboard.State(), h.Clock.Now(), h.Formatter)
	if err != nil {
		h.Log.Error("Failed to build page", "error", err)
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	page.FormError = formError

	var body bytes.Buffer
	if err := h.Renderer.Render(&body, "dashboard.html", page); err != nil {
		h.Log.Error("Failed to render page", "error", err)
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = body.WriteTo(w)
}
