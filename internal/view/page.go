package view

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/services"
	"fmt"
	"net/url"
	"time"

	"github.com/samber/lo"
)

// Page is the template data for the dashboard page.
type Page struct {
	Form        domain.DeliveryForm
	FormError   string
	Active      []ActiveItem
	Rows        []Row
	Modal       *Modal
	CurrentTime string
}

type ActiveItem struct {
	ID          string
	Status      string
	SimulateURL string
}

type Row struct {
	domain.Delivery
	Class   string
	EndTime string
	Href    string
}

// Modal is present only while the sensor modal is open.
type Modal struct {
	DeliveryID     string
	Chart          *Chart
	AvgTemperature string
	AvgHumidity    string
}

func NewPage(s services.State, now time.Time, tf TimeFormatter) (Page, error) {
	rows := make([]Row, 0, len(s.Deliveries))
	for _, d := range s.Deliveries {
		class, err := StatusClass(d.Status)
		if err != nil {
			return Page{}, fmt.Errorf("build page: delivery %q: %w", d.ID, err)
		}
		rows = append(rows, Row{
			Delivery: d,
			Class:    class,
			EndTime:  tf.FormatOptional(d.EndTime),
			Href:     "/deliveries/" + url.PathEscape(d.ID),
		})
	}

	p := Page{
		Form: s.Form,
		Active: lo.Map(s.ActiveDeliveries, func(d domain.Delivery, _ int) ActiveItem {
			return ActiveItem{
				ID:          d.ID,
				Status:      d.Status.String(),
				SimulateURL: "/deliveries/" + url.PathEscape(d.ID) + "/simulate",
			}
		}),
		Rows:        rows,
		CurrentTime: tf.Format(now),
	}

	if s.ModalOpen {
		m := &Modal{}
		if s.Selected != nil {
			m.DeliveryID = s.Selected.ID
		}
		if s.Inspection != nil {
			chart := BuildChart(s.Inspection.Readings)
			m.Chart = &chart
			m.AvgTemperature = s.Inspection.AvgTemperature
			m.AvgHumidity = s.Inspection.AvgHumidity
		}
		p.Modal = m
	}

	return p, nil
}
