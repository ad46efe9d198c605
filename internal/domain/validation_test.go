package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "Checking", nil},
		{"max length", strings.Repeat("a", MaxAccountNameLength), nil},
		{"empty", "", ErrInvalidAccountName},
		{"whitespace only", "   ", ErrInvalidAccountName},
		{"too long", strings.Repeat("a", MaxAccountNameLength+1), ErrInvalidAccountName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "monthly rent", nil},
		{"max length", strings.Repeat("a", MaxDescriptionLength), nil},
		{"empty", "", ErrInvalidDescription},
		{"whitespace only", "\t\n ", ErrInvalidDescription},
		{"too long", strings.Repeat("a", MaxDescriptionLength+1), ErrInvalidDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{"positive", decimal.NewFromInt(1), false},
		{"fractional", decimal.RequireFromString("0.01"), false},
		{"zero", decimal.Zero, true},
		{"negative", decimal.NewFromInt(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr && !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("error = %v, want ErrInvalidAmount", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateBalance(t *testing.T) {
	if err := ValidateBalance(decimal.Zero); err != nil {
		t.Errorf("zero balance should be valid: %v", err)
	}
	if err := ValidateBalance(decimal.NewFromInt(100)); err != nil {
		t.Errorf("positive balance should be valid: %v", err)
	}
	if err := ValidateBalance(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeBalance) {
		t.Errorf("error = %v, want ErrNegativeBalance", err)
	}
}

func TestValidateAccountID(t *testing.T) {
	if err := ValidateAccountID(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, id := range []int64{0, -1} {
		if err := ValidateAccountID(id); !errors.Is(err, ErrInvalidAccountID) {
			t.Errorf("ValidateAccountID(%d) = %v, want ErrInvalidAccountID", id, err)
		}
	}
}

func TestValidatePaymentType(t *testing.T) {
	if err := ValidatePaymentType(PaymentTypeCredit); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePaymentType(PaymentTypeDebit); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePaymentType(PaymentType("wire")); !errors.Is(err, ErrInvalidPaymentType) {
		t.Errorf("error = %v, want ErrInvalidPaymentType", err)
	}
}
