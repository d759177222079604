package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeOrder() *Order {
	return &Order{
		OrderID:  "ORD_1",
		Products: []Product{{ASIN: "B0016NHH56", Quantity: 1}},
		ShippingInfo: ShippingInfo{
			FirstName:    "Tim",
			LastName:     "Beaver",
			AddressLine1: "77 Massachusetts Avenue",
			ZipCode:      "02139",
			City:         "Cambridge",
			State:        "MA",
			Country:      "US",
			PhoneNumber:  "5551230101",
		},
	}
}

func TestOrderValidate(t *testing.T) {
	assert.True(t, completeOrder().Validate())
}

func TestOrderValidate_MissingMandatoryFields(t *testing.T) {
	mutations := map[string]func(*Order){
		"empty products":  func(o *Order) { o.Products = nil },
		"no first name":   func(o *Order) { o.ShippingInfo.FirstName = "" },
		"no last name":    func(o *Order) { o.ShippingInfo.LastName = "" },
		"no address":      func(o *Order) { o.ShippingInfo.AddressLine1 = "" },
		"no zip code":     func(o *Order) { o.ShippingInfo.ZipCode = "" },
		"no city":         func(o *Order) { o.ShippingInfo.City = "" },
		"no state":        func(o *Order) { o.ShippingInfo.State = "" },
		"no country":      func(o *Order) { o.ShippingInfo.Country = "" },
		"no phone number": func(o *Order) { o.ShippingInfo.PhoneNumber = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			order := completeOrder()
			mutate(order)
			assert.False(t, order.Validate())
		})
	}
}

func TestOrderValidate_OptionalFields(t *testing.T) {
	order := completeOrder()
	order.ShippingInfo.AddressLine2 = ""
	order.ShippingInfo.Email = ""

	assert.True(t, order.Validate())
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderStatusTaxPending.CanTransitionTo(OrderStatusAwaitingTax))
	assert.True(t, OrderStatusTaxPending.CanTransitionTo(OrderStatusTaxFailed))
	assert.True(t, OrderStatusTaxFailed.CanTransitionTo(OrderStatusAwaitingTax))
	assert.True(t, OrderStatusAwaitingTax.CanTransitionTo(OrderStatusTaxFailed))

	assert.False(t, OrderStatusTaxPending.CanTransitionTo(OrderStatusCompleted))
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatusTaxPending))
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusTaxPending.IsValid())
	assert.True(t, OrderStatusAwaitingTax.IsValid())
	assert.False(t, OrderStatus("UNKNOWN").IsValid())
}
