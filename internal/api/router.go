package api

import (
	"coldchain-dashboard/internal/api/handlers"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"log/slog"
	"net/http"

	gh "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Dashboard *services.Dashboard
	Renderer  *view.Renderer
	Clock     handlers.Clock
	Formatter view.TimeFormatter
	Log       *slog.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	r := mux.NewRouter()

	dash := &handlers.DashboardHandler{
		Dashboard: d.Dashboard,
		Renderer:  d.Renderer,
		Clock:     d.Clock,
		Formatter: d.Formatter,
		Log:       d.Log,
	}
	state := &handlers.StateHandler{Dashboard: d.Dashboard, Formatter: d.Formatter, Log: d.Log}
	clock := &handlers.ClockHandler{Clock: d.Clock, Formatter: d.Formatter, Log: d.Log}

	r.HandleFunc("/health", handlers.Health(d.Log)).Methods(http.MethodGet)
	r.HandleFunc("/clock", clock.Stream).Methods(http.MethodGet)

	r.HandleFunc("/", dash.Show).Methods(http.MethodGet)
	r.HandleFunc("/deliveries", dash.Submit).Methods(http.MethodPost)
	r.HandleFunc("/deliveries/{id}", dash.Select).Methods(http.MethodGet)
	r.HandleFunc("/deliveries/{id}/simulate", dash.Simulate).Methods(http.MethodPost)
	r.HandleFunc("/modal/close", dash.CloseModal).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", state.State).Methods(http.MethodGet)
	api.HandleFunc("/deliveries/{id}/sensor-data", state.SensorData).Methods(http.MethodGet)

	recovery := gh.RecoveryHandler(
		gh.RecoveryLogger(slog.NewLogLogger(d.Log.Handler(), slog.LevelError)),
		gh.PrintRecoveryStack(true),
	)

	return loggingMiddleware(d.Log, recovery(r))
}
