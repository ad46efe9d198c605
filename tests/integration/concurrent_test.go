package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// Concurrent payments against the same account must not lose balance
// updates. The row lock inside the payment transaction serializes them.
func TestConcurrentPaymentsKeepBalanceConsistent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	accountID := env.DB.SeedAccount(ctx, "Checking", decimal.RequireFromString("1000.00"))

	const workers = 10

	var wg sync.WaitGroup
	errs := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec := env.do(t, http.MethodPost, "/api/payments/", map[string]any{
				"account_id":  accountID,
				"amount":      "10.00",
				"description": "concurrent debit",
				"type":        "debit",
			}, nil)
			if rec.Code != http.StatusCreated {
				errs <- rec.Body.String()
			}
		}()
	}

	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Errorf("payment failed: %s", msg)
	}

	balance := env.DB.AccountBalance(ctx, accountID)
	if !balance.Equal(decimal.RequireFromString("900.00")) {
		t.Fatalf("expected balance 900.00 after %d debits, got %s", workers, balance)
	}
}
