package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownStatus    = errors.New("unknown delivery status")
	ErrDeliveryNotFound = errors.New("delivery not found")
)

// Status is the lifecycle state reported by the delivery API.
// Only the values below are valid; anything else is rejected at the boundary.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusAccepted, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("parse status %q: %w", s, ErrUnknownStatus)
	}
}

// Inspectable reports whether sensor readings can be viewed for the status.
// Readings exist once a delivery has been evaluated (accepted or rejected).
func (s Status) Inspectable() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s Status) String() string { return string(s) }

// Represents one tracked shipment with its tolerance bands and pricing.
// Measurement and price fields carry the API's textual value unchanged;
// this layer only displays them.
type Delivery struct {
	ID            string
	Status        Status
	MinTemp       string
	MaxTemp       string
	MinHumidity   string
	MaxHumidity   string
	ProductPrice  string
	DeliveryPrice string
	AvgTemp       string
	AvgHumidity   string
	EndTime       *time.Time
}
