package usecase

import "time"

const (
	// Pagination defaults shared by account and payment listings.
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// Dashboard aggregation parameters.
	RecentPaymentsLimit = 5
	TopAccountsLimit    = 5
	TrendWindow         = 30 * 24 * time.Hour
	TrendBuckets        = 7

	// DefaultRecentLimit applies to the standalone recent-payments listing.
	DefaultRecentLimit = 10
)
