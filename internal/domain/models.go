package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a customer purchase awaiting a downstream tax action
type Order struct {
	ID           uuid.UUID
	OrderID      string
	Status       OrderStatus
	Products     []Product
	ShippingInfo ShippingInfo
	TaxRequestID *string
	CustomError  *string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

// Product represents an item in an order
type Product struct {
	ASIN     string  `json:"asin"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Symbol   string  `json:"symbol,omitempty"`
	Image    string  `json:"image,omitempty"`
	URL      string  `json:"url,omitempty"`
}

// ShippingInfo represents the shipping destination of an order.
// AddressLine2 and Email are the only optional fields.
type ShippingInfo struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	ZipCode      string `json:"zip_code"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email,omitempty"`
}

// Validate reports whether the order is complete enough to submit a tax
// request: non-empty products and all mandatory shipping fields present.
func (o *Order) Validate() bool {
	if len(o.Products) == 0 {
		return false
	}
	s := o.ShippingInfo
	return s.FirstName != "" &&
		s.LastName != "" &&
		s.AddressLine1 != "" &&
		s.ZipCode != "" &&
		s.City != "" &&
		s.State != "" &&
		s.Country != "" &&
		s.PhoneNumber != ""
}
