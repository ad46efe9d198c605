package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrendBucket is one day of payment activity.
type TrendBucket struct {
	Date   time.Time
	Count  int64
	Amount decimal.Decimal
}

// DashboardSummary aggregates ledger-wide totals for the dashboard. Credits
// and debits here follow the type-based convention, consistent with the
// balance invariant.
type DashboardSummary struct {
	TotalAccounts  int64
	TotalBalance   decimal.Decimal
	TotalPayments  int64
	TotalCredits   decimal.Decimal
	TotalDebits    decimal.Decimal
	RecentPayments []*Payment
	TopAccounts    []*Account
	PaymentTrends  []TrendBucket
}
