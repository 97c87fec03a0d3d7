package services

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/ports"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// State is a point-in-time copy of everything the dashboard renders.
type State struct {
	Form             domain.DeliveryForm
	Deliveries       []domain.Delivery
	ActiveDeliveries []domain.Delivery
	Selected         *domain.Delivery
	Inspection       *domain.SensorSummary
	ModalOpen        bool
}

type Option func(*Dashboard)

// WithClock overrides the wall clock used for advance end times.
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithIDGenerator overrides how new delivery ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(d *Dashboard) { d.newID = newID }
}

// Dashboard is the delivery controller: it owns the client-side view state and
// keeps it in step with the delivery API through plain request/response calls.
//
// Every mutation is confirmed only by re-fetching both collections. The two
// collections are fetched independently and may briefly disagree.
//
// Overlapping calls are sequenced: each list refresh and each selection takes a
// ticket, and a response is dropped when a newer one of the same kind has
// already landed (lists) or been issued (selection).
//
// Dashboard is safe for concurrent use.
type Dashboard struct {
	api   ports.DeliveryAPI
	log   *slog.Logger
	now   func() time.Time
	newID func() string

	mu         sync.Mutex
	form       domain.DeliveryForm
	deliveries []domain.Delivery
	active     []domain.Delivery
	selected   *domain.Delivery
	inspection *domain.SensorSummary
	modalOpen  bool

	deliveriesIssued  uint64
	deliveriesApplied uint64
	activeIssued      uint64
	activeApplied     uint64
	selectIssued      uint64
}

func NewDashboard(api ports.DeliveryAPI, log *slog.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		api:   api,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load performs the initial fetch of both collections.
func (d *Dashboard) Load(ctx context.Context) {
	_ = d.Refresh(ctx)
}

// Refresh re-fetches both collections concurrently. A failed fetch is logged
// and leaves that collection as it was; the failures are also returned.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var g errgroup.Group
	var deliveriesErr, activeErr error

	g.Go(func() error {
		deliveriesErr = d.RefreshDeliveries(ctx)
		return nil
	})
	g.Go(func() error {
		activeErr = d.RefreshActiveDeliveries(ctx)
		return nil
	})
	_ = g.Wait()

	return errors.Join(deliveriesErr, activeErr)
}

func (d *Dashboard) RefreshDeliveries(ctx context.Context) error {
	d.mu.Lock()
	d.deliveriesIssued++
	ticket := d.deliveriesIssued
	d.mu.Unlock()

	list, err := d.api.ListDeliveries(ctx)
	if err != nil {
		d.log.Error("Failed to fetch deliveries", "error", err)
		return fmt.Errorf("refresh deliveries: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if ticket < d.deliveriesApplied {
		d.log.Debug("Dropping stale deliveries response", "ticket", ticket, "applied", d.deliveriesApplied)
		return nil
	}
	d.deliveriesApplied = ticket
	d.deliveries = list

	// Keep the open selection in step with the fresh row.
	if d.selected != nil {
		if fresh, ok := lo.Find(list, func(x domain.Delivery) bool { return x.ID == d.selected.ID }); ok {
			d.selected = &fresh
		}
	}

	return nil
}

func (d *Dashboard) RefreshActiveDeliveries(ctx context.Context) error {
	d.mu.Lock()
	d.activeIssued++
	ticket := d.activeIssued
	d.mu.Unlock()

	list, err := d.api.ListActiveDeliveries(ctx)
	if err != nil {
		d.log.Error("Failed to fetch active deliveries", "error", err)
		return fmt.Errorf("refresh active deliveries: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if ticket < d.activeApplied {
		d.log.Debug("Dropping stale active deliveries response", "ticket", ticket, "applied", d.activeApplied)
		return nil
	}
	d.activeApplied = ticket
	d.active = list

	return nil
}

// UpdateForm replaces the form buffer with the latest input.
func (d *Dashboard) UpdateForm(form domain.DeliveryForm) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form = form
}

// SubmitDelivery registers the buffered form as a new delivery under a fresh id.
// On failure the buffer is kept for resubmission.
func (d *Dashboard) SubmitDelivery(ctx context.Context) error {
	d.mu.Lock()
	form := d.form
	d.mu.Unlock()

	req := ports.NewDelivery{
		ID:            d.newID(),
		MinTemp:       form.MinTemp,
		MaxTemp:       form.MaxTemp,
		MinHumidity:   form.MinHumidity,
		MaxHumidity:   form.MaxHumidity,
		ProductPrice:  form.ProductPrice,
		DeliveryPrice: form.DeliveryPrice,
	}

	ack, err := d.api.InitializeDelivery(ctx, req)
	if err != nil {
		d.log.Error("Failed to submit delivery", "delivery_id", req.ID, "error", err)
		return fmt.Errorf("submit delivery: %w", err)
	}
	d.log.Info("Delivery submitted", "delivery_id", req.ID, "ack", string(ack))

	d.mu.Lock()
	d.form.Reset()
	d.mu.Unlock()

	_ = d.Refresh(ctx)
	return nil
}

// SimulateDelivery concludes the transit of a delivery at the current time.
func (d *Dashboard) SimulateDelivery(ctx context.Context, deliveryID string) error {
	sim := ports.Simulation{
		DeliveryID: deliveryID,
		EndTime:    d.now().Truncate(time.Second),
	}

	ack, err := d.api.SimulateDelivery(ctx, sim)
	if err != nil {
		d.log.Error("Failed to simulate delivery", "delivery_id", deliveryID, "error", err)
		return fmt.Errorf("simulate delivery: %w", err)
	}
	d.log.Info("Delivery simulated", "delivery_id", deliveryID, "end_time", sim.EndTime.Unix(), "ack", string(ack))

	_ = d.Refresh(ctx)
	return nil
}

// SelectDelivery handles a click on a delivery row. Evaluated deliveries get
// their sensor series loaded and the modal opened; any other delivery closes
// the modal and discards the loaded series.
func (d *Dashboard) SelectDelivery(ctx context.Context, deliveryID string) error {
	d.mu.Lock()
	target, ok := lo.Find(d.deliveries, func(x domain.Delivery) bool { return x.ID == deliveryID })
	if !ok {
		d.mu.Unlock()
		return fmt.Errorf("select delivery %q: %w", deliveryID, domain.ErrDeliveryNotFound)
	}

	d.selected = &target
	d.selectIssued++
	ticket := d.selectIssued

	if !target.Status.Inspectable() {
		d.inspection = nil
		d.modalOpen = false
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()

	readings, err := d.api.GetSensorData(ctx, deliveryID)
	if err != nil {
		d.log.Error("Failed to fetch sensor data", "delivery_id", deliveryID, "error", err)
		return fmt.Errorf("select delivery %q: %w", deliveryID, err)
	}

	summary := domain.Summarize(readings)

	d.mu.Lock()
	defer d.mu.Unlock()

	if ticket != d.selectIssued {
		d.log.Debug("Dropping superseded sensor data", "delivery_id", deliveryID, "ticket", ticket)
		return nil
	}
	d.inspection = &summary
	d.modalOpen = true

	return nil
}

// CloseModal hides the sensor modal. The selection and series stay loaded.
func (d *Dashboard) CloseModal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.modalOpen = false
}

func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := State{
		Form:             d.form,
		Deliveries:       append([]domain.Delivery(nil), d.deliveries...),
		ActiveDeliveries: append([]domain.Delivery(nil), d.active...),
		ModalOpen:        d.modalOpen,
	}
	if d.selected != nil {
		s.Selected = lo.ToPtr(*d.selected)
	}
	if d.inspection != nil {
		in := *d.inspection
		in.Readings = append([]domain.SensorReading(nil), in.Readings...)
		s.Inspection = &in
	}
	return s
}
