package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.Account, error)
	Update(ctx context.Context, id int64, patch domain.AccountPatch) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, page Page, search string) ([]*domain.Account, int64, error)
	Summary(ctx context.Context, id int64) (*domain.AccountSummary, error)
}

// PaymentRepository defines data access for payments. Mutations run inside a
// transaction so the caller can keep the owning account's balance in step.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Payment, error)
	Update(ctx context.Context, tx Transaction, payment *domain.Payment) error
	Delete(ctx context.Context, tx Transaction, id int64) (bool, error)
	List(ctx context.Context, page Page, search string, accountID int64) ([]*domain.Payment, int64, error)
	Recent(ctx context.Context, limit int) ([]*domain.Payment, error)
}

// DashboardRepository defines read-only aggregation over the two tables.
type DashboardRepository interface {
	AccountTotals(ctx context.Context) (count int64, balance decimal.Decimal, err error)
	PaymentTotals(ctx context.Context) (count int64, credits, debits decimal.Decimal, err error)
	TopAccounts(ctx context.Context, limit int) ([]*domain.Account, error)
	PaymentTrends(ctx context.Context, window time.Duration, buckets int) ([]domain.TrendBucket, error)
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
