package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/infrastructure/metrics"
)

const dashboardCacheKey = "dashboard:summary"

// DashboardUseCase computes read-only ledger-wide aggregates. The several
// queries composing a summary are not wrapped in a transaction; minor
// staleness between them is acceptable.
type DashboardUseCase struct {
	dashboardRepo DashboardRepository
	paymentRepo   PaymentRepository
	cache         Cache
	cacheTTL      time.Duration
	metrics       *metrics.Metrics
}

// NewDashboardUseCase creates a new DashboardUseCase. A nil cache disables
// caching.
func NewDashboardUseCase(
	dashboardRepo DashboardRepository,
	paymentRepo PaymentRepository,
	cache Cache,
	cacheTTL time.Duration,
	m *metrics.Metrics,
) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo: dashboardRepo,
		paymentRepo:   paymentRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		metrics:       m,
	}
}

// Summary returns dashboard totals, recent payments, top accounts and the
// daily payment trend. Results are served from cache within the TTL.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	if cached := uc.fromCache(ctx); cached != nil {
		return cached, nil
	}

	summary := &domain.DashboardSummary{}

	var err error

	summary.TotalAccounts, summary.TotalBalance, err = uc.dashboardRepo.AccountTotals(ctx)
	if err != nil {
		return nil, err
	}

	summary.TotalPayments, summary.TotalCredits, summary.TotalDebits, err = uc.dashboardRepo.PaymentTotals(ctx)
	if err != nil {
		return nil, err
	}

	summary.RecentPayments, err = uc.paymentRepo.Recent(ctx, RecentPaymentsLimit)
	if err != nil {
		return nil, err
	}

	summary.TopAccounts, err = uc.dashboardRepo.TopAccounts(ctx, TopAccountsLimit)
	if err != nil {
		return nil, err
	}

	summary.PaymentTrends, err = uc.dashboardRepo.PaymentTrends(ctx, TrendWindow, TrendBuckets)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, summary)

	return summary, nil
}

func (uc *DashboardUseCase) fromCache(ctx context.Context) *domain.DashboardSummary {
	if uc.cache == nil {
		return nil
	}

	data, err := uc.cache.Get(ctx, dashboardCacheKey)
	if err != nil || data == nil {
		if uc.metrics != nil {
			uc.metrics.DashboardCacheMisses.Inc()
		}

		return nil
	}

	var summary domain.DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil
	}

	if uc.metrics != nil {
		uc.metrics.DashboardCacheHits.Inc()
	}

	return &summary
}

func (uc *DashboardUseCase) toCache(ctx context.Context, summary *domain.DashboardSummary) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, dashboardCacheKey, data, uc.cacheTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache dashboard summary")
	}
}
