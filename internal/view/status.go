package view

import (
	"coldchain-dashboard/internal/domain"
	"fmt"
)

// StatusClass maps a delivery status to the CSS class of its table row.
func StatusClass(s domain.Status) (string, error) {
	switch s {
	case domain.StatusRejected:
		return "status-red", nil
	case domain.StatusDraft:
		return "status-yellow", nil
	case domain.StatusAccepted:
		return "status-green", nil
	default:
		return "", fmt.Errorf("status class for %q: %w", string(s), domain.ErrUnknownStatus)
	}
}
