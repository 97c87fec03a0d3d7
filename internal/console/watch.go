package console

import (
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"context"
	"fmt"
	"io"
	"time"

	tm "github.com/buger/goterm"
)

const DefaultRefreshEvery = 5 * time.Second

// Source is the slice of the dashboard controller a watcher needs.
type Source interface {
	Refresh(ctx context.Context) error
	State() services.State
}

// Ticks hands out clock subscriptions.
type Ticks interface {
	Subscribe() (<-chan time.Time, func())
}

// Screen prepares the terminal for the next frame.
type Screen interface {
	Reset()
}

type terminal struct{}

func (terminal) Reset() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

// Terminal clears the real terminal through goterm.
var Terminal Screen = terminal{}

// Watcher redraws the deliveries on every clock tick and re-fetches them
// every RefreshEvery.
type Watcher struct {
	Out          io.Writer
	Screen       Screen
	Source       Source
	Clock        Ticks
	Formatter    view.TimeFormatter
	RefreshEvery time.Duration
}

// Run blocks until ctx ends or the clock stops.
func (w Watcher) Run(ctx context.Context) error {
	every := w.RefreshEvery
	if every <= 0 {
		every = DefaultRefreshEvery
	}

	ticks, cancel := w.Clock.Subscribe()
	defer cancel()

	var lastRefresh time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if lastRefresh.IsZero() || now.Sub(lastRefresh) >= every {
				// Failures are logged by the controller; the frame shows the prior state.
				_ = w.Source.Refresh(ctx)
				lastRefresh = now
			}
			if err := w.draw(now); err != nil {
				return err
			}
		}
	}
}

func (w Watcher) draw(now time.Time) error {
	if w.Screen != nil {
		w.Screen.Reset()
	}

	s := w.Source.State()
	if _, err := fmt.Fprintf(w.Out, "Current time: %s\n\nActive Deliveries\n", w.Formatter.Format(now)); err != nil {
		return err
	}
	if err := WriteActive(w.Out, s.ActiveDeliveries); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.Out, "\nAll Deliveries"); err != nil {
		return err
	}
	return WriteDeliveries(w.Out, s.Deliveries, w.Formatter)
}
