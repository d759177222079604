package zinc

// OrderRequest represents the body of a Zinc order creation request
type OrderRequest struct {
	IdempotencyKey  string           `json:"idempotency_key"`
	Retailer        string           `json:"retailer"`
	Addax           bool             `json:"addax"`
	Products        []ProductInput   `json:"products"`
	MaxPrice        float64          `json:"max_price"`
	ShippingAddress AddressInput     `json:"shipping_address"`
	Webhooks        WebhooksInput    `json:"webhooks"`
	Shipping        ShippingPolicy   `json:"shipping"`
	IsGift          bool             `json:"is_gift"`
}

// ProductInput identifies a retailer product and quantity to purchase
type ProductInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddressInput represents a Zinc shipping address
type AddressInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	ZipCode      string `json:"zip_code"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phone_number"`
}

// WebhooksInput holds the callback URLs Zinc notifies on request lifecycle events
type WebhooksInput struct {
	RequestSucceeded string `json:"request_succeeded"`
	RequestFailed    string `json:"request_failed"`
	TrackingObtained string `json:"tracking_obtained"`
}

// ShippingPolicy constrains how Zinc selects a shipping method
type ShippingPolicy struct {
	OrderBy  string  `json:"order_by"`
	MaxDays  int     `json:"max_days"`
	MaxPrice float64 `json:"max_price"`
}
