package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccountApplyEffect(t *testing.T) {
	tests := []struct {
		name    string
		balance decimal.Decimal
		effect  decimal.Decimal
		want    decimal.Decimal
	}{
		{"credit effect", decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.NewFromInt(150)},
		{"debit effect", decimal.NewFromInt(100), decimal.NewFromInt(-30), decimal.NewFromInt(70)},
		{"effect below zero", decimal.NewFromInt(10), decimal.NewFromInt(-25), decimal.NewFromInt(-15)},
		{"zero effect", decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := Account{Balance: tt.balance}
			if got := account.ApplyEffect(tt.effect); !got.Equal(tt.want) {
				t.Errorf("ApplyEffect(%s) = %s, want %s", tt.effect, got, tt.want)
			}
			// ApplyEffect computes, it does not mutate.
			if !account.Balance.Equal(tt.balance) {
				t.Errorf("ApplyEffect mutated the balance: %s", account.Balance)
			}
		})
	}
}

func TestAccountPatchEmpty(t *testing.T) {
	if !(AccountPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}

	name := "Savings"
	if (AccountPatch{Name: &name}).Empty() {
		t.Error("patch with name should not be empty")
	}

	balance := decimal.NewFromInt(10)
	if (AccountPatch{Balance: &balance}).Empty() {
		t.Error("patch with balance should not be empty")
	}
}
