package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

const orderColumns = `id, order_id, status, products, shipping_info, tax_request_id, custom_error, created_at, modified_at`

func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		r.logger.Error("Failed to query orders by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1
	`

	row := r.db.QueryRowContext(ctx, query, orderID)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "order", ID: orderID}
	}
	if err != nil {
		r.logger.Error("Failed to get order", zap.Error(err))
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, order_id, status, products, shipping_info, tax_request_id, custom_error, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	now := time.Now()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.ModifiedAt.IsZero() {
		order.ModifiedAt = now
	}

	products, err := json.Marshal(order.Products)
	if err != nil {
		return err
	}
	shippingInfo, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		order.ID,
		order.OrderID,
		order.Status,
		products,
		shippingInfo,
		order.TaxRequestID,
		order.CustomError,
		order.CreatedAt,
		order.ModifiedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create order", zap.Error(err))
		return err
	}

	return nil
}

func (r *orderRepository) UpdateTaxResult(ctx context.Context, orderID, taxRequestID string) error {
	query := `
		UPDATE orders
		SET status = $2, tax_request_id = $3, custom_error = NULL, modified_at = $4
		WHERE order_id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		orderID,
		domain.OrderStatusAwaitingTax,
		taxRequestID,
		time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to update tax result", zap.Error(err))
		return err
	}

	return checkAffected(res, orderID)
}

func (r *orderRepository) UpdateTaxFailure(ctx context.Context, orderID, reason string) error {
	query := `
		UPDATE orders
		SET status = $2, custom_error = $3, modified_at = $4
		WHERE order_id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		orderID,
		domain.OrderStatusTaxFailed,
		reason,
		time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to update tax failure", zap.Error(err))
		return err
	}

	return checkAffected(res, orderID)
}

func checkAffected(res sql.Result, orderID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: orderID}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var products, shippingInfo []byte
	var taxRequestID, customError sql.NullString

	err := row.Scan(
		&order.ID,
		&order.OrderID,
		&order.Status,
		&products,
		&shippingInfo,
		&taxRequestID,
		&customError,
		&order.CreatedAt,
		&order.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(products, &order.Products); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shippingInfo, &order.ShippingInfo); err != nil {
		return nil, err
	}

	if taxRequestID.Valid {
		order.TaxRequestID = &taxRequestID.String
	}
	if customError.Valid {
		order.CustomError = &customError.String
	}

	return &order, nil
}

func scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
