package dto

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/view"
)

// DeliveryForm is the create-delivery HTML form. Empty fields are allowed;
// anything typed must be a number a browser number input would submit.
type DeliveryForm struct {
	MinTemp       string `schema:"minTemp" json:"minTemp" validate:"omitempty,formnumber"`
	MaxTemp       string `schema:"maxTemp" json:"maxTemp" validate:"omitempty,formnumber"`
	MinHumidity   string `schema:"minHumidity" json:"minHumidity" validate:"omitempty,formnumber"`
	MaxHumidity   string `schema:"maxHumidity" json:"maxHumidity" validate:"omitempty,formnumber"`
	ProductPrice  string `schema:"productPrice" json:"productPrice" validate:"omitempty,formnumber"`
	DeliveryPrice string `schema:"deliveryPrice" json:"deliveryPrice" validate:"omitempty,formnumber"`
}

func NewDeliveryForm(f domain.DeliveryForm) DeliveryForm {
	return DeliveryForm{
		MinTemp:       f.MinTemp,
		MaxTemp:       f.MaxTemp,
		MinHumidity:   f.MinHumidity,
		MaxHumidity:   f.MaxHumidity,
		ProductPrice:  f.ProductPrice,
		DeliveryPrice: f.DeliveryPrice,
	}
}

func (f DeliveryForm) ToDomain() domain.DeliveryForm {
	return domain.DeliveryForm{
		MinTemp:       f.MinTemp,
		MaxTemp:       f.MaxTemp,
		MinHumidity:   f.MinHumidity,
		MaxHumidity:   f.MaxHumidity,
		ProductPrice:  f.ProductPrice,
		DeliveryPrice: f.DeliveryPrice,
	}
}

type DeliveryResponse struct {
	DeliveryID    string `json:"deliveryId"`
	Status        string `json:"status"`
	StatusClass   string `json:"statusClass"`
	MinTemp       string `json:"minTemp"`
	MaxTemp       string `json:"maxTemp"`
	MinHumidity   string `json:"minHumidity"`
	MaxHumidity   string `json:"maxHumidity"`
	ProductPrice  string `json:"productPrice"`
	DeliveryPrice string `json:"deliveryPrice"`
	AvgTemp       string `json:"avgTemp"`
	AvgHumidity   string `json:"avgHumidity"`
	EndTime       string `json:"endTime"`
}

type InspectionResponse struct {
	DeliveryID     string      `json:"deliveryId"`
	ModalOpen      bool        `json:"modalOpen"`
	Chart          *view.Chart `json:"chart,omitempty"`
	AvgTemperature string      `json:"avgTemp,omitempty"`
	AvgHumidity    string      `json:"avgHumidity,omitempty"`
}

type StateResponse struct {
	Form             DeliveryForm       `json:"form"`
	Deliveries       []DeliveryResponse `json:"deliveries"`
	ActiveDeliveries []DeliveryResponse `json:"activeDeliveries"`
	Inspection       InspectionResponse `json:"inspection"`
}
