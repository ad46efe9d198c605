package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/payledger/internal/adapter/http"
	"github.com/iho/payledger/internal/adapter/http/handler"
	"github.com/iho/payledger/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/payledger/internal/adapter/repository/redis"
	"github.com/iho/payledger/internal/infrastructure/auth"
	"github.com/iho/payledger/internal/usecase"
	"github.com/iho/payledger/tests/testutil"
)

// testEnv wires the full HTTP stack against a real database. Redis is
// replaced with an in-process instance so only postgres is required.
type testEnv struct {
	DB     *testutil.TestDB
	Router http.Handler
	Token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.NewTestDB(t)
	t.Cleanup(db.Cleanup)
	db.TruncateAll(context.Background())

	mr := miniredis.RunT(t)
	redisClient := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	pool := db.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	auditor := usecase.NewAuditor(postgres.NewAuditRepository(pool))
	retrier := postgres.NewRetrier()

	accountUC := usecase.NewAccountUseCase(accountRepo, auditor, nil)
	paymentUC := usecase.NewPaymentUseCase(txManager, accountRepo, paymentRepo, retrier, auditor, nil)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, paymentRepo, redisrepo.NewCache(redisClient), time.Second, nil)

	jwtManager := auth.NewJWTManager("integration-test-secret", time.Hour)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		PaymentHandler:   handler.NewPaymentHandler(paymentUC),
		DashboardHandler: handler.NewDashboardHandler(dashboardUC),
		AuthHandler:      handler.NewAuthHandler(jwtManager),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
		IdempotencyTTL:   time.Minute,
		Logger:           zerolog.Nop(),
	})

	env := &testEnv{DB: db, Router: router}
	env.Token = env.fetchToken(t)

	return env
}

func (e *testEnv) fetchToken(t *testing.T) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/token", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed to fetch token: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode token response: %v", err)
	}

	return resp.Data.Token
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if e.Token != "" {
		req.Header.Set("Authorization", "Bearer "+e.Token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envlp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envlp); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if !envlp.Success {
		t.Fatalf("expected success response, got %s", rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envlp.Data, out); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
	}
}
