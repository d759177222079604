package zinc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smartdropperofficial/taxapi/internal/config"
)

// Outcome classifies the result of a submission attempt
type Outcome string

const (
	OutcomeAccepted         Outcome = "accepted"
	OutcomeRejected         Outcome = "rejected"
	OutcomeTransportFailure Outcome = "transport_failure"
)

// SubmissionResult is the classified outcome of one Zinc order call.
// A rejection reported by Zinc is a normal result, not an error.
type SubmissionResult struct {
	Outcome   Outcome
	RequestID string
	Reason    string
	Body      json.RawMessage
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Zinc API client
func NewClient(cfg config.ZincConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// zincResponse is the subset of the Zinc response body the client inspects:
// "_type" discriminates errors, "request_id" carries the accepted id.
type zincResponse struct {
	Type      string `json:"_type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// Submit posts an order request to the Zinc /orders resource and classifies
// the response. Transport-level problems (unreachable host, timeout,
// unparseable body) come back as OutcomeTransportFailure; they are safe to
// retry because the idempotency key dedupes at the Zinc side.
func (c *Client) Submit(ctx context.Context, orderReq *OrderRequest) SubmissionResult {
	url := fmt.Sprintf("%s/orders", c.baseURL)

	jsonData, err := json.Marshal(orderReq)
	if err != nil {
		return transportFailure(fmt.Sprintf("failed to marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return transportFailure(fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Zinc request failed",
			zap.String("idempotency_key", orderReq.IdempotencyKey),
			zap.Error(err),
		)
		return transportFailure(fmt.Sprintf("failed to execute request: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(fmt.Sprintf("failed to read response: %v", err))
	}

	var zincResp zincResponse
	if err := json.Unmarshal(body, &zincResp); err != nil {
		return transportFailure(fmt.Sprintf("failed to unmarshal response: %v", err))
	}

	if zincResp.Type == "error" {
		reason := zincResp.Message
		if reason == "" {
			reason = "order rejected by Zinc"
		}
		c.logger.Warn("Zinc rejected order",
			zap.String("idempotency_key", orderReq.IdempotencyKey),
			zap.String("reason", reason),
		)
		return SubmissionResult{
			Outcome: OutcomeRejected,
			Reason:  reason,
			Body:    body,
		}
	}

	return SubmissionResult{
		Outcome:   OutcomeAccepted,
		RequestID: zincResp.RequestID,
		Body:      body,
	}
}

func transportFailure(reason string) SubmissionResult {
	return SubmissionResult{
		Outcome: OutcomeTransportFailure,
		Reason:  reason,
	}
}
