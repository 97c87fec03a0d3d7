package deliveryapi

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/platform/obs"
	"coldchain-dashboard/internal/ports"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxIdleConns        = 10
	maxConnsPerHost     = 5
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 10 * time.Second

	maxErrorBody = 4 << 10
	maxAckBody   = 64 << 10
)

// Client implements ports.DeliveryAPI over the delivery service's REST endpoints.
//
// Every call is a single request/response exchange:
//   - no retries or backoff
//   - no caching (sensor reads ask intermediaries not to cache either)
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("delivery api base url is empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse delivery api base url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("delivery api base url %q: unsupported scheme %q", base, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("delivery api base url %q: missing host", base)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        maxIdleConns,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}

	return &Client{
		session: &http.Client{Timeout: timeout, Transport: transport},
		baseURL: base,
		log:     log,
	}, nil
}

func (c *Client) ListDeliveries(ctx context.Context) (_ []domain.Delivery, err error) {
	defer obs.Time(ctx, c.log, "deliveryapi.ListDeliveries")(&err)

	return c.listDeliveries(ctx, "/getDeliveries")
}

func (c *Client) ListActiveDeliveries(ctx context.Context) (_ []domain.Delivery, err error) {
	defer obs.Time(ctx, c.log, "deliveryapi.ListActiveDeliveries")(&err)

	return c.listDeliveries(ctx, "/getActiveDeliveries")
}

func (c *Client) listDeliveries(ctx context.Context, path string) ([]domain.Delivery, error) {
	var payload []deliveryPayload
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("list deliveries %s: %w", path, err)
	}

	out := make([]domain.Delivery, 0, len(payload))
	for i, p := range payload {
		d, err := p.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list deliveries %s: item %d: %w", path, i, err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (c *Client) InitializeDelivery(ctx context.Context, d ports.NewDelivery) (_ ports.Ack, err error) {
	defer obs.Time(ctx, c.log, "deliveryapi.InitializeDelivery")(&err)

	if strings.TrimSpace(d.ID) == "" {
		return "", errors.New("initialize delivery: delivery id must be non-empty")
	}

	ack, err := c.postJSON(ctx, "/initializeDelivery", initializeDeliveryRequest{
		MinTemp:       d.MinTemp,
		MaxTemp:       d.MaxTemp,
		MinHumidity:   d.MinHumidity,
		MaxHumidity:   d.MaxHumidity,
		ProductPrice:  d.ProductPrice,
		DeliveryPrice: d.DeliveryPrice,
		DeliveryID:    d.ID,
	})
	if err != nil {
		return "", fmt.Errorf("initialize delivery %q: %w", d.ID, err)
	}

	return ack, nil
}

func (c *Client) SimulateDelivery(ctx context.Context, s ports.Simulation) (_ ports.Ack, err error) {
	defer obs.Time(ctx, c.log, "deliveryapi.SimulateDelivery")(&err)

	if strings.TrimSpace(s.DeliveryID) == "" {
		return "", errors.New("simulate delivery: delivery id must be non-empty")
	}

	ack, err := c.postJSON(ctx, "/simulateDelivery", simulateDeliveryRequest{
		DeliveryID: s.DeliveryID,
		EndTime:    s.EndTime.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("simulate delivery %q: %w", s.DeliveryID, err)
	}

	return ack, nil
}

func (c *Client) GetSensorData(ctx context.Context, deliveryID string) (_ []domain.SensorReading, err error) {
	defer obs.Time(ctx, c.log, "deliveryapi.GetSensorData")(&err)

	if strings.TrimSpace(deliveryID) == "" {
		return nil, errors.New("get sensor data: delivery id must be non-empty")
	}

	header := http.Header{}
	header.Set("Cache-Control", "no-cache")

	var payload []readingPayload
	if err := c.getJSON(ctx, "/getSensorData/"+url.PathEscape(deliveryID), header, &payload); err != nil {
		return nil, fmt.Errorf("get sensor data %q: %w", deliveryID, err)
	}

	out := make([]domain.SensorReading, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toDomain())
	}

	return out, nil
}
