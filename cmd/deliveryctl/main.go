package main

import (
	"coldchain-dashboard/internal/adapters/deliveryapi"
	"coldchain-dashboard/internal/config"
	"coldchain-dashboard/internal/console"
	"coldchain-dashboard/internal/platform/clock"
	"coldchain-dashboard/internal/services"
	"context"
	"errors"
	"fmt"
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
	exitUsage   = 64
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "deliveryctl: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &cli{
		dash:      services.NewDashboard(client, logger),
		out:       os.Stdout,
		formatter: tf,
		screen:    console.Terminal,
		newClock: func() *clock.Ticker {
			return clock.NewTicker(cfg.ClockInterval, time.Now)
		},
	}

	err = c.dispatch(ctx, args)
	var uerr *usageError
	switch {
	case err == nil:
		return exitOK, nil
	case errors.As(err, &uerr):
		fmt.Fprint(os.Stderr, usage)
		return exitUsage, err
	default:
		return exitRuntime, err
	}
}
