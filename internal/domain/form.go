package domain

// DeliveryForm buffers the create-delivery inputs exactly as typed.
// Bounds are not cross-checked: an inverted band is forwarded as entered.
type DeliveryForm struct {
	MinTemp       string
	MaxTemp       string
	MinHumidity   string
	MaxHumidity   string
	ProductPrice  string
	DeliveryPrice string
}

func (f *DeliveryForm) Reset() {
	*f = DeliveryForm{}
}

func (f DeliveryForm) IsEmpty() bool {
	return f == DeliveryForm{}
}
