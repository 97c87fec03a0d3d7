package deliveryapi

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/ports"
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// FakeDelivery seeds a FakeAPI.
type FakeDelivery struct {
	Delivery domain.Delivery
	Active   bool
	Readings []domain.SensorReading
}

// FakeAPI is an in-memory ports.DeliveryAPI for tests and local runs.
// Simulated deliveries leave the active set and take Outcome as their status.
type FakeAPI struct {
	mu       sync.Mutex
	order    []string
	byID     map[string]*FakeDelivery
	calls    map[string]int
	failures map[string]error

	Outcome domain.Status
}

func NewFakeAPI(seed []FakeDelivery) *FakeAPI {
	f := &FakeAPI{
		byID:     make(map[string]*FakeDelivery, len(seed)),
		calls:    make(map[string]int),
		failures: make(map[string]error),
		Outcome:  domain.StatusAccepted,
	}
	for _, s := range seed {
		f.add(s)
	}
	return f
}

func (f *FakeAPI) add(s FakeDelivery) {
	entry := s
	f.order = append(f.order, s.Delivery.ID)
	f.byID[s.Delivery.ID] = &entry
}

// Fail makes every later call of op (a DeliveryAPI method name) return err.
// A nil err clears the failure.
func (f *FakeAPI) Fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		delete(f.failures, op)
		return
	}
	f.failures[op] = err
}

// Calls returns how many times op was invoked.
func (f *FakeAPI) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

func (f *FakeAPI) enter(op string) error {
	f.calls[op]++
	return f.failures[op]
}

func (f *FakeAPI) ListDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.enter("ListDeliveries"); err != nil {
		return nil, err
	}

	return lo.Map(f.order, func(id string, _ int) domain.Delivery {
		return f.byID[id].Delivery
	}), nil
}

func (f *FakeAPI) ListActiveDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.enter("ListActiveDeliveries"); err != nil {
		return nil, err
	}

	active := lo.Filter(f.order, func(id string, _ int) bool { return f.byID[id].Active })
	return lo.Map(active, func(id string, _ int) domain.Delivery {
		return f.byID[id].Delivery
	}), nil
}

func (f *FakeAPI) InitializeDelivery(ctx context.Context, d ports.NewDelivery) (ports.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.enter("InitializeDelivery"); err != nil {
		return "", err
	}
	if _, ok := f.byID[d.ID]; ok {
		return "", fmt.Errorf("delivery %q already exists", d.ID)
	}

	f.add(FakeDelivery{
		Delivery: domain.Delivery{
			ID:            d.ID,
			Status:        domain.StatusDraft,
			MinTemp:       d.MinTemp,
			MaxTemp:       d.MaxTemp,
			MinHumidity:   d.MinHumidity,
			MaxHumidity:   d.MaxHumidity,
			ProductPrice:  d.ProductPrice,
			DeliveryPrice: d.DeliveryPrice,
		},
		Active: true,
	})

	return ports.Ack(fmt.Sprintf("Delivery %s initialized", d.ID)), nil
}

func (f *FakeAPI) SimulateDelivery(ctx context.Context, s ports.Simulation) (ports.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.enter("SimulateDelivery"); err != nil {
		return "", err
	}

	entry, ok := f.byID[s.DeliveryID]
	if !ok {
		return "", fmt.Errorf("delivery %q: %w", s.DeliveryID, domain.ErrDeliveryNotFound)
	}

	end := s.EndTime
	entry.Active = false
	entry.Delivery.Status = f.Outcome
	entry.Delivery.EndTime = &end
	if len(entry.Readings) > 0 {
		summary := domain.Summarize(entry.Readings)
		entry.Delivery.AvgTemp = summary.AvgTemperature
		entry.Delivery.AvgHumidity = summary.AvgHumidity
	}

	return ports.Ack(fmt.Sprintf("Delivery %s simulated", s.DeliveryID)), nil
}

func (f *FakeAPI) GetSensorData(ctx context.Context, deliveryID string) ([]domain.SensorReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.enter("GetSensorData"); err != nil {
		return nil, err
	}

	entry, ok := f.byID[deliveryID]
	if !ok {
		return nil, fmt.Errorf("delivery %q: %w", deliveryID, domain.ErrDeliveryNotFound)
	}

	return append([]domain.SensorReading(nil), entry.Readings...), nil
}
