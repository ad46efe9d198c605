package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a balance maintained by the payment ledger: at all times the
// balance equals the signed sum of the account's payments, except where a
// manual override was written through an account update.
type Account struct {
	ID        int64
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyEffect returns the balance after adding a signed payment effect.
func (a *Account) ApplyEffect(signed decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(signed)
}

// AccountPatch carries the fields of a partial account update.
type AccountPatch struct {
	Name *string
	// Balance is a manual override: it is written as-is and is not
	// reconciled against payment history.
	Balance *decimal.Decimal
}

// Empty reports whether the patch changes nothing.
func (p AccountPatch) Empty() bool {
	return p.Name == nil && p.Balance == nil
}

// AccountSummary aggregates an account's payment history. Credits and debits
// are split on the raw sign of the stored amount, mirroring the historical
// reporting convention rather than the type-based one used for balance
// maintenance.
type AccountSummary struct {
	Account           Account
	TotalTransactions int64
	TotalCredits      decimal.Decimal
	TotalDebits       decimal.Decimal
}
