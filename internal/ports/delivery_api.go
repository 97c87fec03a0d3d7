//go:generate go run go.uber.org/mock/mockgen -source=delivery_api.go -destination=../../mocks/mock_delivery_api.go -package=mocks
package ports

import (
	"coldchain-dashboard/internal/domain"
	"context"
	"time"
)

// Input for registering a new delivery. Values are forwarded as entered.
type NewDelivery struct {
	ID            string
	MinTemp       string
	MaxTemp       string
	MinHumidity   string
	MaxHumidity   string
	ProductPrice  string
	DeliveryPrice string
}

// Input for concluding a delivery's transit.
type Simulation struct {
	DeliveryID string
	EndTime    time.Time
}

// Ack is the opaque acknowledgement body returned by write calls.
type Ack string

// Port: the external delivery API this dashboard sits on top of.
type DeliveryAPI interface {
	// Return every delivery known to the API.
	ListDeliveries(ctx context.Context) ([]domain.Delivery, error)
	// Return the deliveries still in transit.
	ListActiveDeliveries(ctx context.Context) ([]domain.Delivery, error)
	// Register a new delivery.
	InitializeDelivery(ctx context.Context, d NewDelivery) (Ack, error)
	// Conclude a delivery's transit, triggering evaluation against its tolerance bands.
	SimulateDelivery(ctx context.Context, s Simulation) (Ack, error)
	// Return the recorded sensor series of one delivery, oldest first.
	GetSensorData(ctx context.Context, deliveryID string) ([]domain.SensorReading, error)
}
