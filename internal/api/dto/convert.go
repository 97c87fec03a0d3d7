package dto

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/services"
	"coldchain-dashboard/internal/view"
	"fmt"
)

func NewDeliveryResponse(d domain.Delivery, tf view.TimeFormatter) (DeliveryResponse, error) {
	class, err := view.StatusClass(d.Status)
	if err != nil {
		return DeliveryResponse{}, fmt.Errorf("delivery %q: %w", d.ID, err)
	}
	return DeliveryResponse{
		DeliveryID:    d.ID,
		Status:        d.Status.String(),
		StatusClass:   class,
		MinTemp:       d.MinTemp,
		MaxTemp:       d.MaxTemp,
		MinHumidity:   d.MinHumidity,
		MaxHumidity:   d.MaxHumidity,
		ProductPrice:  d.ProductPrice,
		DeliveryPrice: d.DeliveryPrice,
		AvgTemp:       d.AvgTemp,
		AvgHumidity:   d.AvgHumidity,
		EndTime:       tf.FormatOptional(d.EndTime),
	}, nil
}

func NewInspectionResponse(s services.State) InspectionResponse {
	res := InspectionResponse{ModalOpen: s.ModalOpen}
	if s.Selected != nil {
		res.DeliveryID = s.Selected.ID
	}
	if s.Inspection != nil {
		chart := view.BuildChart(s.Inspection.Readings)
		res.Chart = &chart
		res.AvgTemperature = s.Inspection.AvgTemperature
		res.AvgHumidity = s.Inspection.AvgHumidity
	}
	return res
}

func NewStateResponse(s services.State, tf view.TimeFormatter) (StateResponse, error) {
	res := StateResponse{
		Form:             NewDeliveryForm(s.Form),
		Deliveries:       make([]DeliveryResponse, 0, len(s.Deliveries)),
		ActiveDeliveries: make([]DeliveryResponse, 0, len(s.ActiveDeliveries)),
		Inspection:       NewInspectionResponse(s),
	}
	for _, d := range s.Deliveries {
		r, err := NewDeliveryResponse(d, tf)
		if err != nil {
			return StateResponse{}, err
		}
		res.Deliveries = append(res.Deliveries, r)
	}
	for _, d := range s.ActiveDeliveries {
		r, err := NewDeliveryResponse(d, tf)
		if err != nil {
			return StateResponse{}, err
		}
		res.ActiveDeliveries = append(res.ActiveDeliveries, r)
	}
	return res, nil
}
