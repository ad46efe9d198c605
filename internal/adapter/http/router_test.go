package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/payledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/payledger/internal/adapter/http/middleware"
	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/infrastructure/auth"
	"github.com/iho/payledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RequiresAuthForAPIRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	for _, path := range []string{"/api/accounts/", "/api/payments/", "/api/dashboard/summary"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected %s to require auth, got %d", path, rec.Code)
		}
	}
}

func TestNewRouter_TokenGrantsAccess(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected token endpoint to return 200, got %d", rec.Code)
	}

	var tokenResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tokenResp); err != nil {
		t.Fatalf("failed to decode token response: %v", err)
	}
	if tokenResp.Data.Token == "" {
		t.Fatalf("expected a token in the response")
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/accounts/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenResp.Data.Token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected authenticated request to succeed, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	jwtManager := auth.NewJWTManager("router-test-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
		cfg.AuthHandler = handler.NewAuthHandler(jwtManager)
		cfg.IdempotencyStore = store
		cfg.IdempotencyTTL = time.Minute
	}))

	token, _, err := jwtManager.Generate(domain.DemoUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	body := `{"name":"Checking","balance":"100.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/auth/token",
		"POST /api/accounts/",
		"GET /api/accounts/",
		"GET /api/accounts/{id}",
		"PUT /api/accounts/{id}",
		"DELETE /api/accounts/{id}",
		"GET /api/accounts/{id}/summary",
		"POST /api/payments/",
		"GET /api/payments/",
		"GET /api/payments/recent",
		"GET /api/payments/{id}",
		"PUT /api/payments/{id}",
		"DELETE /api/payments/{id}",
		"GET /api/dashboard/summary",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	jwtManager := auth.NewJWTManager("router-test-secret", time.Hour)

	cfg := RouterConfig{
		AccountHandler:   handler.NewAccountHandler(stubAccountService{}),
		PaymentHandler:   handler.NewPaymentHandler(stubPaymentService{}),
		DashboardHandler: handler.NewDashboardHandler(stubDashboardService{}),
		AuthHandler:      handler.NewAuthHandler(jwtManager),
		HealthHandler:    handler.NewHealthHandler(nil, nil),
		JWTManager:       jwtManager,
		Logger:           zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: 1, Name: input.Name}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) DeleteAccount(ctx context.Context, id int64) error {
	return nil
}

func (stubAccountService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, usecase.Pagination, error) {
	return []*domain.Account{}, usecase.Pagination{}, nil
}

func (stubAccountService) GetAccountSummary(ctx context.Context, id int64) (*domain.AccountSummary, error) {
	return &domain.AccountSummary{Account: domain.Account{ID: id}}, nil
}

type stubPaymentService struct{}

func (stubPaymentService) CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*domain.Payment, error) {
	return &domain.Payment{ID: 1, AccountID: input.AccountID}, nil
}

func (stubPaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return &domain.Payment{ID: id}, nil
}

func (stubPaymentService) UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	return &domain.Payment{ID: id}, nil
}

func (stubPaymentService) DeletePayment(ctx context.Context, id int64) error {
	return nil
}

func (stubPaymentService) ListPayments(ctx context.Context, input usecase.ListPaymentsInput) ([]*domain.Payment, usecase.Pagination, error) {
	return []*domain.Payment{}, usecase.Pagination{}, nil
}

func (stubPaymentService) RecentPayments(ctx context.Context, limit int) ([]*domain.Payment, error) {
	return []*domain.Payment{}, nil
}

type stubDashboardService struct{}

func (stubDashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	return &domain.DashboardSummary{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
