package deliveryapi

import (
	"bytes"
	"coldchain-dashboard/internal/domain"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type initializeDeliveryRequest struct {
	MinTemp       string `json:"minTemp"`
	MaxTemp       string `json:"maxTemp"`
	MinHumidity   string `json:"minHumidity"`
	MaxHumidity   string `json:"maxHumidity"`
	ProductPrice  string `json:"productPrice"`
	DeliveryPrice string `json:"deliveryPrice"`
	DeliveryID    string `json:"deliveryId"`
}

type simulateDeliveryRequest struct {
	DeliveryID string `json:"deliveryId"`
	EndTime    int64  `json:"endTime"`
}

type deliveryPayload struct {
	DeliveryID    string    `json:"deliveryId"`
	Status        string    `json:"status"`
	MinTemp       flexText  `json:"minTemp"`
	MaxTemp       flexText  `json:"maxTemp"`
	MinHumidity   flexText  `json:"minHumidity"`
	MaxHumidity   flexText  `json:"maxHumidity"`
	ProductPrice  flexText  `json:"productPrice"`
	DeliveryPrice flexText  `json:"deliveryPrice"`
	AvgTemp       flexText  `json:"avgTemp"`
	AvgHumidity   flexText  `json:"avgHumidity"`
	EndTime       flexEpoch `json:"endTime"`
}

func (p deliveryPayload) toDomain() (domain.Delivery, error) {
	status, err := domain.ParseStatus(p.Status)
	if err != nil {
		return domain.Delivery{}, fmt.Errorf("delivery %q: %w", p.DeliveryID, err)
	}

	d := domain.Delivery{
		ID:            p.DeliveryID,
		Status:        status,
		MinTemp:       string(p.MinTemp),
		MaxTemp:       string(p.MaxTemp),
		MinHumidity:   string(p.MinHumidity),
		MaxHumidity:   string(p.MaxHumidity),
		ProductPrice:  string(p.ProductPrice),
		DeliveryPrice: string(p.DeliveryPrice),
		AvgTemp:       string(p.AvgTemp),
		AvgHumidity:   string(p.AvgHumidity),
	}
	if p.EndTime > 0 {
		t := time.Unix(int64(p.EndTime), 0)
		d.EndTime = &t
	}

	return d, nil
}

type readingPayload struct {
	Temperature float64         `json:"temperature"`
	Humidity    float64         `json:"humidity"`
	Timestamp   json.RawMessage `json:"timestamp,omitempty"`
}

func (p readingPayload) toDomain() domain.SensorReading {
	return domain.SensorReading{
		Temperature: p.Temperature,
		Humidity:    p.Humidity,
		RecordedAt:  parseTimestamp(p.Timestamp),
	}
}

// parseTimestamp accepts epoch seconds or an RFC 3339 string.
// The chart does not use reading timestamps, so anything else is dropped.
func parseTimestamp(raw json.RawMessage) *time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &t
		}
		if sec, err := strconv.ParseFloat(s, 64); err == nil {
			t := time.Unix(int64(sec), 0)
			return &t
		}
		return nil
	}

	var sec float64
	if err := json.Unmarshal(raw, &sec); err != nil {
		return nil
	}
	t := time.Unix(int64(sec), 0)
	return &t
}

// flexText holds a field the API may send as a number, a string or null.
type flexText string

func (f *flexText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode text field: %w", err)
		}
		*f = flexText(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("decode numeric field %s: %w", b, err)
		}
		*f = flexText(n.String())
	}

	return nil
}

// flexEpoch is a Unix time in seconds; absent, null or zero means unset.
type flexEpoch int64

func (f *flexEpoch) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	var text flexText
	if err := text.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("decode end time: %w", err)
	}

	s := strings.TrimSpace(string(text))
	if s == "" {
		*f = 0
		return nil
	}

	sec, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return fmt.Errorf("decode end time %q: not a number", s)
	}

	*f = flexEpoch(math.Floor(sec))
	return nil
}
