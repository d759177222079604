package domain

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusTaxPending          OrderStatus = "TAX_PENDING"
	OrderStatusAwaitingTax         OrderStatus = "AWAITING_TAX"
	OrderStatusTaxFailed           OrderStatus = "TAX_FAILED"
	OrderStatusAwaitingPayment     OrderStatus = "AWAITING_PAYMENT"
	OrderStatusOrderConfirmed      OrderStatus = "ORDER_CONFIRMED"
	OrderStatusSentToAmazon        OrderStatus = "SENT_TO_AMAZON"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusShippingRefused     OrderStatus = "SHIPPING_ADDRESS_REFUSED"
	OrderStatusProductUnavailable  OrderStatus = "PRODUCT_UNAVAILABLE"
	OrderStatusInsufficientBalance OrderStatus = "INSUFFICIENT_ZMA_BALANCE"
	OrderStatusError               OrderStatus = "ERROR"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusTaxPending,
		OrderStatusAwaitingTax,
		OrderStatusTaxFailed,
		OrderStatusAwaitingPayment,
		OrderStatusOrderConfirmed,
		OrderStatusSentToAmazon,
		OrderStatusCompleted,
		OrderStatusShippingRefused,
		OrderStatusProductUnavailable,
		OrderStatusInsufficientBalance,
		OrderStatusError:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusTaxPending:
		return newStatus == OrderStatusAwaitingTax ||
			newStatus == OrderStatusTaxFailed
	case OrderStatusTaxFailed:
		// Retry re-submits the same order
		return newStatus == OrderStatusTaxPending ||
			newStatus == OrderStatusAwaitingTax
	case OrderStatusAwaitingTax:
		return newStatus == OrderStatusAwaitingPayment ||
			newStatus == OrderStatusOrderConfirmed ||
			newStatus == OrderStatusTaxFailed
	case OrderStatusAwaitingPayment:
		return newStatus == OrderStatusOrderConfirmed
	case OrderStatusOrderConfirmed:
		return newStatus == OrderStatusSentToAmazon ||
			newStatus == OrderStatusShippingRefused ||
			newStatus == OrderStatusProductUnavailable ||
			newStatus == OrderStatusInsufficientBalance ||
			newStatus == OrderStatusError
	case OrderStatusSentToAmazon:
		return newStatus == OrderStatusCompleted
	case OrderStatusCompleted:
		return false // Terminal state
	default:
		return false
	}
}
