package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
	"github.com/iho/payledger/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	openingBalance := decimal.NewFromInt(250)
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name        string
		input       usecase.CreateAccountInput
		wantBalance decimal.Decimal
		expectError bool
		errorType   error
	}{
		{
			name:        "with opening balance",
			input:       usecase.CreateAccountInput{Name: "Checking", Balance: &openingBalance},
			wantBalance: openingBalance,
		},
		{
			name:        "defaults balance to zero",
			input:       usecase.CreateAccountInput{Name: "Savings"},
			wantBalance: decimal.Zero,
		},
		{
			name:        "reject empty name",
			input:       usecase.CreateAccountInput{Name: ""},
			expectError: true,
			errorType:   domain.ErrInvalidAccountName,
		},
		{
			name:        "reject blank name",
			input:       usecase.CreateAccountInput{Name: "   "},
			expectError: true,
			errorType:   domain.ErrInvalidAccountName,
		},
		{
			name:        "reject overlong name",
			input:       usecase.CreateAccountInput{Name: strings.Repeat("x", domain.MaxAccountNameLength+1)},
			expectError: true,
			errorType:   domain.ErrInvalidAccountName,
		},
		{
			name:        "reject negative opening balance",
			input:       usecase.CreateAccountInput{Name: "Checking", Balance: &negative},
			expectError: true,
			errorType:   domain.ErrNegativeBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo := mocks.NewMockAccountRepository()
			uc := usecase.NewAccountUseCase(accRepo, nil, nil)

			account, err := uc.CreateAccount(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.ID == 0 {
				t.Error("expected assigned account ID")
			}
			if !account.Balance.Equal(tt.wantBalance) {
				t.Errorf("balance = %s, want %s", account.Balance, tt.wantBalance)
			}
		})
	}
}

func TestAccountUseCase_UpdateAccount(t *testing.T) {
	newName := "Renamed"
	newBalance := decimal.NewFromInt(999)
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name        string
		id          int64
		input       usecase.UpdateAccountInput
		expectError bool
		errorType   error
	}{
		{
			name:  "rename",
			id:    1,
			input: usecase.UpdateAccountInput{Name: &newName},
		},
		{
			name:  "balance override",
			id:    1,
			input: usecase.UpdateAccountInput{Balance: &newBalance},
		},
		{
			name:        "empty patch reports not found",
			id:          1,
			expectError: true,
			errorType:   domain.ErrAccountNotFound,
		},
		{
			name:        "reject negative balance",
			id:          1,
			input:       usecase.UpdateAccountInput{Balance: &negative},
			expectError: true,
			errorType:   domain.ErrNegativeBalance,
		},
		{
			name:        "unknown account",
			id:          42,
			input:       usecase.UpdateAccountInput{Name: &newName},
			expectError: true,
			errorType:   domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo := mocks.NewMockAccountRepository()
			accRepo.Seed(&domain.Account{ID: 1, Name: "Checking", Balance: decimal.NewFromInt(100)})
			uc := usecase.NewAccountUseCase(accRepo, nil, nil)

			account, err := uc.UpdateAccount(context.Background(), tt.id, tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.input.Name != nil && account.Name != *tt.input.Name {
				t.Errorf("name = %q, want %q", account.Name, *tt.input.Name)
			}
			if tt.input.Balance != nil && !account.Balance.Equal(*tt.input.Balance) {
				t.Errorf("balance = %s, want %s", account.Balance, tt.input.Balance)
			}
		})
	}
}

func TestAccountUseCase_DeleteAccount(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	accRepo.Seed(&domain.Account{ID: 1, Name: "Checking", Balance: decimal.NewFromInt(100)})
	uc := usecase.NewAccountUseCase(accRepo, nil, nil)

	if err := uc.DeleteAccount(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accRepo.Account(1) != nil {
		t.Error("account still present after delete")
	}

	err := uc.DeleteAccount(context.Background(), 1)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_ListAccounts_NormalizesPage(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()

	var gotPage usecase.Page
	accRepo.ListFunc = func(ctx context.Context, page usecase.Page, search string) ([]*domain.Account, int64, error) {
		gotPage = page
		return nil, 0, nil
	}

	uc := usecase.NewAccountUseCase(accRepo, nil, nil)

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero values", 0, 0, usecase.DefaultPage, usecase.DefaultLimit},
		{"negative values", -1, -10, usecase.DefaultPage, usecase.DefaultLimit},
		{"limit above max", 1, 500, 1, usecase.MaxLimit},
		{"in range", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.ListAccounts(context.Background(), usecase.ListAccountsInput{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPage.Page != tt.wantPage || gotPage.Limit != tt.wantLimit {
				t.Errorf("page = %+v, want {%d %d}", gotPage, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestAccountUseCase_GetAccountSummary(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	accRepo.SummaryFunc = func(ctx context.Context, id int64) (*domain.AccountSummary, error) {
		if id != 1 {
			return nil, domain.ErrAccountNotFound
		}
		return &domain.AccountSummary{
			Account:           domain.Account{ID: 1, Name: "Checking", Balance: decimal.NewFromInt(60)},
			TotalTransactions: 3,
			TotalCredits:      decimal.NewFromInt(100),
			TotalDebits:       decimal.NewFromInt(40),
		}, nil
	}

	uc := usecase.NewAccountUseCase(accRepo, nil, nil)

	summary, err := uc.GetAccountSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalTransactions != 3 {
		t.Errorf("total transactions = %d, want 3", summary.TotalTransactions)
	}

	_, err = uc.GetAccountSummary(context.Background(), 2)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}
