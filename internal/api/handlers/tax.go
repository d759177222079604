package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/crypto"
	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/internal/repository"
	"github.com/smartdropperofficial/taxapi/internal/service"
	"github.com/smartdropperofficial/taxapi/internal/zinc"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

// taxRequestPayload is the decrypted body of POST /v1/tax-requests
type taxRequestPayload struct {
	Order *orderPayload `json:"order"`
}

type orderPayload struct {
	OrderID      string              `json:"order_id"`
	Products     []domain.Product    `json:"products"`
	ShippingInfo domain.ShippingInfo `json:"shipping_info"`
}

// HandleCreateTaxRequest handles POST /v1/tax-requests. The body is an
// encrypted order payload; it is decrypted, shaped into a Zinc request and
// forwarded. On success the Zinc response is returned verbatim; every
// failure path returns an empty JSON body so no payload detail leaks to
// unauthenticated callers.
func HandleCreateTaxRequest(cfg *config.Config, decryptor *crypto.Decryptor, submitter service.Submitter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil || len(body) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{})
			return
		}

		plaintext := decryptor.Decrypt(string(body))

		var payload taxRequestPayload
		if err := json.Unmarshal([]byte(plaintext), &payload); err != nil {
			logger.Warn("Failed to parse decrypted payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{})
			return
		}

		if payload.Order == nil {
			c.JSON(http.StatusUnauthorized, gin.H{})
			return
		}

		order := &domain.Order{
			OrderID:      payload.Order.OrderID,
			Products:     payload.Order.Products,
			ShippingInfo: payload.Order.ShippingInfo,
		}

		zincReq, err := zinc.BuildOrderRequest(order, cfg.Zinc)
		if err != nil {
			logger.Warn("Failed to build tax request",
				zap.String("order_id", order.OrderID),
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, gin.H{})
			return
		}

		result := submitter.Submit(c.Request.Context(), zincReq)
		if result.Outcome != zinc.OutcomeAccepted {
			logger.Warn("Tax request not accepted",
				zap.String("order_id", order.OrderID),
				zap.String("outcome", string(result.Outcome)),
				zap.String("reason", result.Reason),
			)
			c.JSON(http.StatusBadRequest, gin.H{})
			return
		}

		c.Data(http.StatusCreated, "application/json", result.Body)
	}
}

// SendTaxRequestsRequest selects the orders for a batch submission
type SendTaxRequestsRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1"`
}

// HandleSendTaxRequests handles POST /v1/admin/orders/send-tax-requests.
// The batch runs in the background; the caller polls the status endpoint
// for per-order feedback.
func HandleSendTaxRequests(taxService service.TaxService, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendTaxRequestsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		orders := make([]*domain.Order, 0, len(req.OrderIDs))
		for _, orderID := range req.OrderIDs {
			order, err := repos.Order.GetByOrderID(c.Request.Context(), orderID)
			if err != nil {
				if _, ok := err.(*errors.ErrNotFound); ok {
					c.JSON(http.StatusNotFound, gin.H{"error": "order not found", "order_id": orderID})
					return
				}
				logger.Error("Failed to get order", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}
			orders = append(orders, order)
		}

		// Detached from the request context: a closed connection must not
		// cancel a batch the operator already triggered.
		go func() {
			if err := taxService.SubmitBatch(context.Background(), orders); err != nil {
				logger.Error("Batch submission aborted", zap.Error(err))
			}
		}()

		c.JSON(http.StatusAccepted, gin.H{"submitted": len(orders)})
	}
}

// HandleRetryTaxRequest handles POST /v1/admin/orders/:order_id/retry-tax
func HandleRetryTaxRequest(taxService service.TaxService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")

		if err := taxService.Retry(c.Request.Context(), orderID); err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			if _, ok := err.(*errors.ErrInvalidStateTransition); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to retry tax request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		entry, _ := taxService.Statuses().Get(orderID)
		c.JSON(http.StatusOK, gin.H{
			"order_id": orderID,
			"result":   entry,
		})
	}
}

// HandleTaxRequestStatuses handles GET /v1/admin/tax-requests/status
func HandleTaxRequestStatuses(taxService service.TaxService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"statuses": taxService.Statuses().All()})
	}
}

// DecryptRequest carries an encrypted payload to inspect
type DecryptRequest struct {
	Data string `json:"data" binding:"required"`
}

// HandleDecrypt handles POST /v1/decrypt
func HandleDecrypt(decryptor *crypto.Decryptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DecryptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data in request body"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"decryptedData": decryptor.Decrypt(req.Data)})
	}
}
