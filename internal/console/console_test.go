package console

import (
	"bytes"
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcFormatter(t *testing.T) view.TimeFormatter {
	t.Helper()
	tf, err := view.NewTimeFormatter("", "UTC")
	require.NoError(t, err)
	return tf
}

func TestWriteDeliveries(t *testing.T) {
	end := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	err := WriteDeliveries(&buf, []domain.Delivery{
		{ID: "d1", Status: domain.StatusDraft, MinTemp: "2", MaxTemp: "8"},
		{ID: "d2", Status: domain.StatusAccepted, AvgTemp: "4.5", EndTime: &end},
	}, utcFormatter(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Product Price")
	assert.Contains(t, out, "End Time")
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "draft")
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "2/3/2026, 10:00:00 AM")
}

func TestWriteDeliveriesUnknownStatus(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDeliveries(&buf, []domain.Delivery{{ID: "x", Status: "lost"}}, utcFormatter(t))
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestWriteActiveEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteActive(&buf, nil))
	assert.Equal(t, "No active deliveries\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := domain.Summarize([]domain.SensorReading{
		{Temperature: 20, Humidity: 50},
		{Temperature: 22, Humidity: 60},
	})

	require.NoError(t, WriteSummary(&buf, "d2", summary))

	out := buf.String()
	assert.Contains(t, out, "Sensor Data for Delivery d2")
	assert.Contains(t, out, "time2")
	assert.Contains(t, out, "Average Temperature: 21.00°C")
	assert.Contains(t, out, "Average Humidity: 55.00%")
}

type fakeSource struct {
	refreshes int
	state     services.State
}

func (f *fakeSource) Refresh(context.Context) error {
	f.refreshes++
	return nil
}

func (f *fakeSource) State() services.State { return f.state }

type fakeTicks struct {
	ch        chan time.Time
	cancelled bool
}

func (f *fakeTicks) Subscribe() (<-chan time.Time, func()) {
	return f.ch, func() { f.cancelled = true }
}

type countingScreen struct{ resets int }

func (c *countingScreen) Reset() { c.resets++ }

func TestWatcherRedrawsEveryTickAndRefreshesOnCadence(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := &fakeTicks{ch: make(chan time.Time, 3)}
	ticks.ch <- t0
	ticks.ch <- t0.Add(time.Second)
	ticks.ch <- t0.Add(5 * time.Second)
	close(ticks.ch)

	src := &fakeSource{state: services.State{
		Deliveries:       []domain.Delivery{{ID: "d1", Status: domain.StatusDraft}},
		ActiveDeliveries: []domain.Delivery{{ID: "d1", Status: domain.StatusDraft}},
	}}
	screen := &countingScreen{}
	var buf bytes.Buffer

	w := Watcher{
		Out:          &buf,
		Screen:       screen,
		Source:       src,
		Clock:        ticks,
		Formatter:    utcFormatter(t),
		RefreshEvery: 5 * time.Second,
	}
	require.NoError(t, w.Run(context.Background()))

	assert.Equal(t, 2, src.refreshes)
	assert.Equal(t, 3, screen.resets)
	assert.True(t, ticks.cancelled)
	assert.Contains(t, buf.String(), "Current time: 1/1/2026, 12:00:05 AM")
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	ticks := &fakeTicks{ch: make(chan time.Time)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := Watcher{Out: &bytes.Buffer{}, Source: &fakeSource{}, Clock: ticks, Formatter: utcFormatter(t)}
	require.NoError(t, w.Run(ctx))
	assert.True(t, ticks.cancelled)
}
