package zinc

import (
	"strings"

	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

const (
	retailerAmazon = "amazon"

	// Shipping method selection enforced at the Zinc side
	shippingOrderBy  = "price"
	shippingMaxDays  = 10
	shippingMaxPrice = 1000
)

// BuildOrderRequest derives the Zinc request body for a tax request from an
// order. It is a pure function shared by the HTTP handler and the batch
// processor so the two entry points cannot drift apart.
//
// Every shipping field is sourced from the order's own ShippingInfo record;
// mixing fields across orders would produce a request with mismatched names
// and addresses.
func BuildOrderRequest(order *domain.Order, cfg config.ZincConfig) (*OrderRequest, error) {
	if !order.Validate() {
		return nil, &errors.ErrValidation{
			OrderID: order.OrderID,
			Reason:  "incomplete shipping info or missing products",
		}
	}

	products := make([]ProductInput, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, ProductInput{
			ProductID: p.ASIN,
			Quantity:  p.Quantity,
		})
	}

	webhookBase := strings.TrimSuffix(cfg.WebhookBaseURL, "/")

	info := order.ShippingInfo
	return &OrderRequest{
		IdempotencyKey: order.OrderID,
		Retailer:       retailerAmazon,
		Addax:          true,
		Products:       products,
		MaxPrice:       0,
		ShippingAddress: AddressInput{
			FirstName:    info.FirstName,
			LastName:     info.LastName,
			AddressLine1: info.AddressLine1,
			AddressLine2: info.AddressLine2,
			ZipCode:      info.ZipCode,
			City:         info.City,
			State:        info.State,
			Country:      info.Country,
			PhoneNumber:  info.PhoneNumber,
		},
		Webhooks: WebhooksInput{
			RequestSucceeded: webhookBase + "/request-succeeded",
			RequestFailed:    webhookBase + "/request-failed",
			TrackingObtained: webhookBase + "/tracking",
		},
		Shipping: ShippingPolicy{
			OrderBy:  shippingOrderBy,
			MaxDays:  shippingMaxDays,
			MaxPrice: shippingMaxPrice,
		},
		IsGift: false,
	}, nil
}
