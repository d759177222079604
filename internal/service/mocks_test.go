package service

import (
	"context"
	"time"

	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/internal/zinc"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

// mockOrderRepository implements repository.OrderRepository for testing
type mockOrderRepository struct {
	orders map[string]*domain.Order

	taxResults      map[string]string // order_id -> tax_request_id
	taxFailures     map[string]string // order_id -> reason
	updateResultErr error
	listErr         error
}

func newMockOrderRepository(orders ...*domain.Order) *mockOrderRepository {
	m := &mockOrderRepository{
		orders:      make(map[string]*domain.Order),
		taxResults:  make(map[string]string),
		taxFailures: make(map[string]string),
	}
	for _, o := range orders {
		m.orders[o.OrderID] = o
	}
	return m
}

func (m *mockOrderRepository) List(_ context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, m.listErr
}

func (m *mockOrderRepository) ListByStatus(_ context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Order, 0)
	for _, o := range m.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepository) GetByOrderID(_ context.Context, orderID string) (*domain.Order, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: orderID}
	}
	return order, nil
}

func (m *mockOrderRepository) Create(_ context.Context, order *domain.Order) error {
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockOrderRepository) UpdateTaxResult(_ context.Context, orderID, taxRequestID string) error {
	if m.updateResultErr != nil {
		return m.updateResultErr
	}
	m.taxResults[orderID] = taxRequestID
	return nil
}

func (m *mockOrderRepository) UpdateTaxFailure(_ context.Context, orderID, reason string) error {
	m.taxFailures[orderID] = reason
	return nil
}

// stubSubmitter implements Submitter with canned per-order results
type stubSubmitter struct {
	results map[string]zinc.SubmissionResult
	calls   []string
	delays  map[string]time.Duration
	// onSubmit runs before the canned result is returned
	onSubmit func(req *zinc.OrderRequest)
}

func newStubSubmitter() *stubSubmitter {
	return &stubSubmitter{
		results: make(map[string]zinc.SubmissionResult),
		delays:  make(map[string]time.Duration),
	}
}

func (s *stubSubmitter) Submit(_ context.Context, req *zinc.OrderRequest) zinc.SubmissionResult {
	s.calls = append(s.calls, req.IdempotencyKey)
	if s.onSubmit != nil {
		s.onSubmit(req)
	}
	if d, ok := s.delays[req.IdempotencyKey]; ok {
		time.Sleep(d)
	}
	if result, ok := s.results[req.IdempotencyKey]; ok {
		return result
	}
	return zinc.SubmissionResult{Outcome: zinc.OutcomeAccepted, RequestID: "REQ_" + req.IdempotencyKey}
}
