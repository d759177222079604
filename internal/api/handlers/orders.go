package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/internal/repository"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

// OrderResponse represents the order response
type OrderResponse struct {
	ID           string              `json:"id"`
	OrderID      string              `json:"order_id"`
	Status       domain.OrderStatus  `json:"status"`
	Products     []domain.Product    `json:"products"`
	ShippingInfo domain.ShippingInfo `json:"shipping_info"`
	TaxRequestID *string             `json:"tax_request_id,omitempty"`
	CustomError  *string             `json:"custom_error,omitempty"`
	CreatedAt    string              `json:"created_at"`
	ModifiedAt   string              `json:"modified_at"`
}

func toOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID.String(),
		OrderID:      order.OrderID,
		Status:       order.Status,
		Products:     order.Products,
		ShippingInfo: order.ShippingInfo,
		TaxRequestID: order.TaxRequestID,
		CustomError:  order.CustomError,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
		ModifiedAt:   order.ModifiedAt.Format(time.RFC3339),
	}
}

// HandleListOrders handles GET /v1/admin/orders?status=
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			orders []*domain.Order
			err    error
		)

		if statusStr := c.Query("status"); statusStr != "" {
			status := domain.OrderStatus(statusStr)
			if !status.IsValid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			orders, err = repos.Order.ListByStatus(c.Request.Context(), status)
		} else {
			orders, err = repos.Order.List(c.Request.Context())
		}

		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]OrderResponse, len(orders))
		for i, order := range orders {
			responses[i] = toOrderResponse(order)
		}

		c.JSON(http.StatusOK, gin.H{"orders": responses})
	}
}

// HandleGetOrder handles GET /v1/admin/orders/:order_id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")

		order, err := repos.Order.GetByOrderID(c.Request.Context(), orderID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}
