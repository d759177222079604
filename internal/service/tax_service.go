package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/internal/repository"
	"github.com/smartdropperofficial/taxapi/internal/zinc"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

// invalidOrderReason is recorded for orders that never reach the network
const invalidOrderReason = "incomplete shipping info or missing products"

// Submitter sends one built request to the remote retailer API
type Submitter interface {
	Submit(ctx context.Context, req *zinc.OrderRequest) zinc.SubmissionResult
}

// TaxService is the submission orchestrator surface the API layer depends on
type TaxService interface {
	SubmitBatch(ctx context.Context, orders []*domain.Order) error
	Retry(ctx context.Context, orderID string) error
	SubmitPending(ctx context.Context) error
	Statuses() *StatusStore
}

type taxService struct {
	repos     *repository.Repositories
	submitter Submitter
	zincCfg   config.ZincConfig
	statuses  *StatusStore
	logger    *zap.Logger
}

// NewTaxService creates the tax submission orchestrator
func NewTaxService(zincCfg config.ZincConfig, repos *repository.Repositories, submitter Submitter, logger *zap.Logger) *taxService {
	return &taxService{
		repos:     repos,
		submitter: submitter,
		zincCfg:   zincCfg,
		statuses:  NewStatusStore(),
		logger:    logger,
	}
}

// Statuses exposes the per-order status map for UI feedback
func (s *taxService) Statuses() *StatusStore {
	return s.statuses
}

// SubmitBatch submits tax requests for the given orders, strictly one at a
// time. Sequential processing bounds the outbound call rate to Zinc and
// makes status transitions observable in submission order. Per-order
// failures are absorbed into the status store and never abort the batch;
// the only hard error is a context canceled before an order is picked up.
func (s *taxService) SubmitBatch(ctx context.Context, orders []*domain.Order) error {
	for _, order := range orders {
		// Cooperative cancellation at iteration boundaries only; an
		// in-flight Zinc call is never interrupted here.
		if err := ctx.Err(); err != nil {
			return err
		}

		s.submitOne(ctx, order)
	}

	return nil
}

// Retry re-submits a single order by id. Safe to call repeatedly: the
// idempotency key (the order id itself) dedupes at the Zinc side.
func (s *taxService) Retry(ctx context.Context, orderID string) error {
	order, err := s.repos.Order.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(domain.OrderStatusAwaitingTax) {
		return &errors.ErrInvalidStateTransition{
			From: order.Status,
			To:   domain.OrderStatusAwaitingTax,
		}
	}

	return s.SubmitBatch(ctx, []*domain.Order{order})
}

// SubmitPending submits every order currently in TAX_PENDING. This is the
// scheduled batch entry point.
func (s *taxService) SubmitPending(ctx context.Context) error {
	orders, err := s.repos.Order.ListByStatus(ctx, domain.OrderStatusTaxPending)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		s.logger.Info("No pending orders to process")
		return nil
	}

	s.logger.Info("Processing pending orders", zap.Int("count", len(orders)))
	return s.SubmitBatch(ctx, orders)
}

func (s *taxService) submitOne(ctx context.Context, order *domain.Order) {
	s.statuses.Set(order.OrderID, StatusEntry{Status: SubmissionPending})

	if !order.Validate() {
		s.logger.Warn("Order failed validation, skipping submission",
			zap.String("order_id", order.OrderID),
		)
		s.recordFailure(ctx, order, invalidOrderReason)
		return
	}

	req, err := zinc.BuildOrderRequest(order, s.zincCfg)
	if err != nil {
		s.recordFailure(ctx, order, invalidOrderReason)
		return
	}

	result := s.submitter.Submit(ctx, req)

	switch result.Outcome {
	case zinc.OutcomeAccepted:
		s.statuses.Set(order.OrderID, StatusEntry{
			Status:       SubmissionSucceeded,
			TaxRequestID: result.RequestID,
		})
		s.logger.Info("Tax request accepted",
			zap.String("order_id", order.OrderID),
			zap.String("tax_request_id", result.RequestID),
		)

		// The operator already saw "succeeded"; a persist failure is a
		// reconciliation concern, not a rollback.
		if err := s.repos.Order.UpdateTaxResult(ctx, order.OrderID, result.RequestID); err != nil {
			s.logger.Error("Failed to persist accepted tax request, statuses diverged",
				zap.String("order_id", order.OrderID),
				zap.String("tax_request_id", result.RequestID),
				zap.Error(err),
			)
		}

	default:
		s.logger.Warn("Tax request failed",
			zap.String("order_id", order.OrderID),
			zap.String("outcome", string(result.Outcome)),
			zap.String("reason", result.Reason),
		)
		s.recordFailure(ctx, order, result.Reason)
	}
}

func (s *taxService) recordFailure(ctx context.Context, order *domain.Order, reason string) {
	s.statuses.Set(order.OrderID, StatusEntry{
		Status: SubmissionFailed,
		Reason: reason,
	})

	if err := s.repos.Order.UpdateTaxFailure(ctx, order.OrderID, reason); err != nil {
		s.logger.Error("Failed to persist tax failure",
			zap.String("order_id", order.OrderID),
			zap.Error(err),
		)
	}
}
