package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
)

// DashboardRepository implements usecase.DashboardRepository with set-based
// aggregation over the two tables. Each method is one query; cross-query
// snapshot consistency is not required.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// AccountTotals returns the account count and the summed balance.
func (r *DashboardRepository) AccountTotals(ctx context.Context) (int64, decimal.Decimal, error) {
	var (
		count   int64
		balance pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(balance), 0) FROM accounts").Scan(&count, &balance)
	if err != nil {
		return 0, decimal.Zero, err
	}

	return count, numericToDecimal(balance), nil
}

// PaymentTotals returns the payment count plus credit and debit sums grouped
// by type, consistent with the balance-maintenance convention.
func (r *DashboardRepository) PaymentTotals(ctx context.Context) (int64, decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'debit' THEN amount ELSE 0 END), 0)
		FROM payments
	`

	var (
		count           int64
		credits, debits pgtype.Numeric
	)

	if err := r.pool.QueryRow(ctx, query).Scan(&count, &credits, &debits); err != nil {
		return 0, decimal.Zero, decimal.Zero, err
	}

	return count, numericToDecimal(credits), numericToDecimal(debits), nil
}

// TopAccounts returns the highest-balance accounts.
func (r *DashboardRepository) TopAccounts(ctx context.Context, limit int) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+accountColumns+" FROM accounts ORDER BY balance DESC, id ASC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// PaymentTrends returns daily payment count and amount buckets inside the
// window, most recent day first, capped at the bucket count.
func (r *DashboardRepository) PaymentTrends(ctx context.Context, window time.Duration, buckets int) ([]domain.TrendBucket, error) {
	since := time.Now().UTC().Add(-window)

	query := `
		SELECT date, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments
		WHERE date >= $1
		GROUP BY date
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, since, buckets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []domain.TrendBucket

	for rows.Next() {
		var (
			bucket domain.TrendBucket
			amount pgtype.Numeric
		)

		if err := rows.Scan(&bucket.Date, &bucket.Count, &amount); err != nil {
			return nil, err
		}

		bucket.Amount = numericToDecimal(amount)
		trends = append(trends, bucket)
	}

	return trends, rows.Err()
}
