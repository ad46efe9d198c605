package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPaymentTypeValid(t *testing.T) {
	tests := []struct {
		t    PaymentType
		want bool
	}{
		{PaymentTypeCredit, true},
		{PaymentTypeDebit, true},
		{PaymentType(""), false},
		{PaymentType("transfer"), false},
		{PaymentType("CREDIT"), false},
	}

	for _, tt := range tests {
		if got := tt.t.Valid(); got != tt.want {
			t.Errorf("PaymentType(%q).Valid() = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPaymentSignedAmount(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		want    decimal.Decimal
	}{
		{
			name:    "credit is positive",
			payment: Payment{Amount: decimal.NewFromInt(100), Type: PaymentTypeCredit},
			want:    decimal.NewFromInt(100),
		},
		{
			name:    "debit is negative",
			payment: Payment{Amount: decimal.NewFromInt(100), Type: PaymentTypeDebit},
			want:    decimal.NewFromInt(-100),
		},
		{
			name:    "fractional debit",
			payment: Payment{Amount: decimal.RequireFromString("0.01"), Type: PaymentTypeDebit},
			want:    decimal.RequireFromString("-0.01"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payment.SignedAmount(); !got.Equal(tt.want) {
				t.Errorf("SignedAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPaymentPatchEmpty(t *testing.T) {
	if !(PaymentPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}

	desc := "groceries"
	if (PaymentPatch{Description: &desc}).Empty() {
		t.Error("patch with description should not be empty")
	}
}

func TestPaymentPatchApply(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	original := Payment{
		ID:          7,
		AccountID:   1,
		Amount:      decimal.NewFromInt(50),
		Date:        date,
		Description: "rent",
		Type:        PaymentTypeDebit,
	}

	newAmount := decimal.NewFromInt(75)
	newType := PaymentTypeCredit
	result := PaymentPatch{Amount: &newAmount, Type: &newType}.Apply(original)

	if !result.Amount.Equal(newAmount) {
		t.Errorf("amount = %s, want 75", result.Amount)
	}
	if result.Type != PaymentTypeCredit {
		t.Errorf("type = %s, want credit", result.Type)
	}
	// Untouched fields keep their values.
	if result.ID != 7 || result.AccountID != 1 || result.Description != "rent" || !result.Date.Equal(date) {
		t.Errorf("patch changed untouched fields: %+v", result)
	}
	// The original is not mutated.
	if !original.Amount.Equal(decimal.NewFromInt(50)) || original.Type != PaymentTypeDebit {
		t.Errorf("Apply mutated the original payment: %+v", original)
	}
}
