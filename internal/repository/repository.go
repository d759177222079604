package repository

import (
	"context"

	"github.com/smartdropperofficial/taxapi/internal/domain"
)

// OrderRepository is the order store the tax workflow reads from and
// writes back to. The workflow never mutates rows directly; it asks the
// store to apply a patch.
type OrderRepository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	// UpdateTaxResult records an accepted submission: sets tax_request_id
	// and advances the order to AWAITING_TAX.
	UpdateTaxResult(ctx context.Context, orderID, taxRequestID string) error
	// UpdateTaxFailure records a failed submission: sets custom_error and
	// advances the order to TAX_FAILED.
	UpdateTaxFailure(ctx context.Context, orderID, reason string) error
}

// Repositories aggregates all repository implementations
type Repositories struct {
	Order OrderRepository
}
