package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	auditor     *Auditor
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, auditor *Auditor, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		auditor:     auditor,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name    string
	Balance *decimal.Decimal
}

// CreateAccount creates a new account. The store assigns the ID.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if input.Balance != nil {
		if err := domain.ValidateBalance(*input.Balance); err != nil {
			return nil, err
		}
		balance = *input.Balance
	}

	account := &domain.Account{
		Name:    input.Name,
		Balance: balance,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
		uc.metrics.AccountOperations.WithLabelValues("create").Inc()
	}

	uc.auditor.Record(ctx, domain.AuditActionAccountCreate, "account", account.ID, nil, account)

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// UpdateAccountInput represents input for a partial account update.
type UpdateAccountInput struct {
	Name    *string
	Balance *decimal.Decimal
}

// UpdateAccount applies a partial update. A balance write here is a manual
// override, deliberately not reconciled against payment history. An empty
// patch updates no row and reports the account as not found.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error) {
	patch := domain.AccountPatch{Name: input.Name, Balance: input.Balance}
	if patch.Empty() {
		return nil, domain.ErrAccountNotFound
	}

	if patch.Name != nil {
		if err := domain.ValidateAccountName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Balance != nil {
		if err := domain.ValidateBalance(*patch.Balance); err != nil {
			return nil, err
		}
	}

	before, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues("update").Inc()
	}

	uc.auditor.Record(ctx, domain.AuditActionAccountUpdate, "account", id, before, account)

	return account, nil
}

// DeleteAccount removes an account. The store cascades deletion of its
// payments, so no balance reversal is needed.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id int64) error {
	before, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := uc.accountRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrAccountNotFound
	}

	if uc.metrics != nil {
		uc.metrics.AccountsDeleted.Inc()
		uc.metrics.AccountOperations.WithLabelValues("delete").Inc()
	}

	uc.auditor.Record(ctx, domain.AuditActionAccountDelete, "account", id, before, nil)

	return nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Page   int
	Limit  int
	Search string
}

// ListAccounts lists accounts with pagination and case-insensitive name search,
// newest first.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, Pagination, error) {
	page := NormalizePage(input.Page, input.Limit)

	accounts, total, err := uc.accountRepo.List(ctx, page, input.Search)
	if err != nil {
		return nil, Pagination{}, err
	}

	return accounts, NewPagination(page, total), nil
}

// GetAccountSummary returns the account plus totals over its payment history.
func (uc *AccountUseCase) GetAccountSummary(ctx context.Context, id int64) (*domain.AccountSummary, error) {
	return uc.accountRepo.Summary(ctx, id)
}
