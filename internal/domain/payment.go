package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType determines how a payment affects its account balance.
type PaymentType string

const (
	PaymentTypeCredit PaymentType = "credit"
	PaymentTypeDebit  PaymentType = "debit"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	return t == PaymentTypeCredit || t == PaymentTypeDebit
}

// Sign returns +1 for credits and -1 for debits. This is the only place the
// credit/debit sign convention is expressed.
func (t PaymentType) Sign() decimal.Decimal {
	if t == PaymentTypeCredit {
		return decimal.NewFromInt(1)
	}

	return decimal.NewFromInt(-1)
}

// Payment represents a single ledger entry against an account.
type Payment struct {
	ID          int64
	AccountID   int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Type        PaymentType
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// AccountName is denormalized at read time via a join; nil if the
	// account row no longer exists.
	AccountName *string
}

// SignedAmount returns the payment's contribution to its account balance.
func (p *Payment) SignedAmount() decimal.Decimal {
	return p.Amount.Mul(p.Type.Sign())
}

// PaymentPatch carries the fields of a partial payment update. Nil fields
// keep their previous value.
type PaymentPatch struct {
	AccountID   *int64
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	Type        *PaymentType
}

// Empty reports whether the patch changes nothing.
func (p PaymentPatch) Empty() bool {
	return p.AccountID == nil && p.Amount == nil && p.Date == nil &&
		p.Description == nil && p.Type == nil
}

// Apply returns a copy of payment with the patch fields overlaid.
func (p PaymentPatch) Apply(payment Payment) Payment {
	if p.AccountID != nil {
		payment.AccountID = *p.AccountID
	}
	if p.Amount != nil {
		payment.Amount = *p.Amount
	}
	if p.Date != nil {
		payment.Date = *p.Date
	}
	if p.Description != nil {
		payment.Description = *p.Description
	}
	if p.Type != nil {
		payment.Type = *p.Type
	}

	return payment
}
