package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartdropperofficial/taxapi/internal/config"
	"github.com/smartdropperofficial/taxapi/internal/crypto"
	"github.com/smartdropperofficial/taxapi/internal/domain"
	"github.com/smartdropperofficial/taxapi/internal/repository"
	"github.com/smartdropperofficial/taxapi/internal/service"
	"github.com/smartdropperofficial/taxapi/internal/zinc"
	"github.com/smartdropperofficial/taxapi/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type emptyOrderRepository struct{}

func (emptyOrderRepository) List(context.Context) ([]*domain.Order, error) {
	return []*domain.Order{}, nil
}

func (emptyOrderRepository) ListByStatus(context.Context, domain.OrderStatus) ([]*domain.Order, error) {
	return []*domain.Order{}, nil
}

func (emptyOrderRepository) GetByOrderID(_ context.Context, orderID string) (*domain.Order, error) {
	return nil, &errors.ErrNotFound{Resource: "order", ID: orderID}
}

func (emptyOrderRepository) Create(context.Context, *domain.Order) error { return nil }

func (emptyOrderRepository) UpdateTaxResult(context.Context, string, string) error { return nil }

func (emptyOrderRepository) UpdateTaxFailure(context.Context, string, string) error { return nil }

type noopSubmitter struct{}

func (noopSubmitter) Submit(context.Context, *zinc.OrderRequest) zinc.SubmissionResult {
	return zinc.SubmissionResult{Outcome: zinc.OutcomeAccepted, RequestID: "REQ_1"}
}

func newTestRouter(t *testing.T, adminKey string) *gin.Engine {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Environment: "test",
		Zinc: config.ZincConfig{
			APIKey:         "test-key",
			BaseURL:        "https://api.zinc.io/v1",
			WebhookBaseURL: "https://mailer.example.com/zinc",
		},
		API: config.APIConfig{
			AdminKeyHash:  string(hash),
			EncryptionKey: "test-encryption-key",
		},
	}

	logger := zap.NewNop()
	repos := &repository.Repositories{Order: emptyOrderRepository{}}
	submitter := noopSubmitter{}
	taxService := service.NewTaxService(cfg.Zinc, repos, submitter, logger)
	decryptor := crypto.NewDecryptor(cfg.API.EncryptionKey, logger)

	return NewRouter(cfg, repos, taxService, submitter, decryptor, logger)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, "admin-key")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminRequiresAuth(t *testing.T) {
	router := newTestRouter(t, "admin-key")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRejectsWrongKey(t *testing.T) {
	router := newTestRouter(t, "admin-key")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminAcceptsValidKey(t *testing.T) {
	router := newTestRouter(t, "admin-key")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer admin-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_StatusEndpoint(t *testing.T) {
	router := newTestRouter(t, "admin-key")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/tax-requests/status", nil)
	req.Header.Set("Authorization", "Bearer admin-key")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"statuses":{}}`, w.Body.String())
}
