package main

import (
	"coldchain-dashboard/internal/adapters/deliveryapi"
	"coldchain-dashboard/internal/api"
	"coldchain-dashboard/internal/config"
	"coldchain-dashboard/internal/platform/clock"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Dashboard terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run is the application composition root. It wires the delivery API client
// behind the controller and serves the dashboard until SIGINT or SIGTERM.
func run() (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}
	tf, err := cfg.TimeFormatter()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(cfg.LogLevel)

	client, err := deliveryapi.NewClient(cfg.DeliveryAPIURL, cfg.DeliveryAPITimeout, logger)
	if err != nil {
		return exitConfig, err
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return exitRuntime, err
	}

	ticker := clock.NewTicker(cfg.ClockInterval, time.Now)
	defer ticker.Stop()

	dashboard := services.NewDashboard(client, logger)
	router := api.NewRouter(api.Deps{
		Dashboard: dashboard,
		Renderer:  renderer,
		Clock:     ticker,
		Formatter: tf,
		Log:       logger,
	})

	// WriteTimeout covers upstream latency on page loads; the clock stream lifts it per connection.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.DeliveryAPITimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", srv.Addr, "delivery_api", cfg.DeliveryAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return exitRuntime, fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	// Open clock streams end when their subscriptions close.
	ticker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return exitOK, nil
}
