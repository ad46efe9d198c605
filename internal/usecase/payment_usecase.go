package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/infrastructure/metrics"
)

// PaymentUseCase handles payment business logic. Every mutation keeps the
// owning account's balance equal to the signed sum of its payments, and
// commits the ledger row and the balance adjustment in one transaction.
type PaymentUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	paymentRepo PaymentRepository
	retrier     Retrier
	auditor     *Auditor
	metrics     *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	paymentRepo PaymentRepository,
	retrier Retrier,
	auditor *Auditor,
	m *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		retrier:     retrier,
		auditor:     auditor,
		metrics:     m,
	}
}

// CreatePaymentInput represents input for creating a payment.
type CreatePaymentInput struct {
	AccountID   int64
	Amount      decimal.Decimal
	Date        *time.Time
	Description string
	Type        domain.PaymentType
}

// CreatePayment atomically inserts the payment row and applies its signed
// effect to the owning account's balance.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	if input.Type == "" {
		input.Type = domain.PaymentTypeDebit
	}

	if err := validatePaymentFields(input.AccountID, input.Amount, input.Description, input.Type); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	var created *domain.Payment

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
		if err != nil {
			return err
		}

		payment := &domain.Payment{
			AccountID:   input.AccountID,
			Amount:      input.Amount,
			Date:        date,
			Description: input.Description,
			Type:        input.Type,
		}

		if err := uc.paymentRepo.Create(ctx, tx, payment); err != nil {
			return err
		}

		newBalance := account.ApplyEffect(payment.SignedAmount())
		if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		payment.AccountName = &account.Name
		created = payment

		return nil
	})
	if err != nil {
		uc.countError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsCreated.Inc()
		amount, _ := input.Amount.Float64()
		uc.metrics.PaymentAmount.Observe(amount)
	}

	uc.auditor.Record(ctx, domain.AuditActionPaymentCreate, "payment", created.ID, nil, created)

	return created, nil
}

// GetPayment retrieves a payment by ID, with the account name joined in.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// UpdatePayment applies a partial update and reconciles balances: the original
// signed effect is reversed on the original account and the new signed effect
// is applied to the resulting account. When both are the same account the two
// adjustments collapse into a single net balance write, so no intermediate
// balance is ever committed or observable.
func (uc *PaymentUseCase) UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	if patch.Empty() {
		return nil, domain.ErrNothingToUpdate
	}

	if err := validatePaymentPatch(patch); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var before, updated *domain.Payment

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		original, err := uc.paymentRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		result := patch.Apply(*original)
		result.UpdatedAt = now

		var accountName string

		if result.AccountID == original.AccountID {
			account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, original.AccountID)
			if err != nil {
				return err
			}

			net := result.SignedAmount().Sub(original.SignedAmount())
			if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, account.ApplyEffect(net), now); err != nil {
				return err
			}

			accountName = account.Name
		} else {
			accounts, err := uc.lockAccountPair(ctx, tx, original.AccountID, result.AccountID)
			if err != nil {
				return err
			}

			oldAccount, newAccount := accounts[original.AccountID], accounts[result.AccountID]

			reversed := oldAccount.ApplyEffect(original.SignedAmount().Neg())
			if err := uc.accountRepo.UpdateBalance(ctx, tx, oldAccount.ID, reversed, now); err != nil {
				return err
			}

			applied := newAccount.ApplyEffect(result.SignedAmount())
			if err := uc.accountRepo.UpdateBalance(ctx, tx, newAccount.ID, applied, now); err != nil {
				return err
			}

			accountName = newAccount.Name
		}

		if err := uc.paymentRepo.Update(ctx, tx, &result); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		result.AccountName = &accountName
		before, updated = original, &result

		return nil
	})
	if err != nil {
		uc.countError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsUpdated.Inc()
	}

	uc.auditor.Record(ctx, domain.AuditActionPaymentUpdate, "payment", id, before, updated)

	return updated, nil
}

// DeletePayment atomically removes the payment row and reverses its signed
// effect on the owning account.
func (uc *PaymentUseCase) DeletePayment(ctx context.Context, id int64) error {
	now := time.Now().UTC()

	var deleted *domain.Payment

	err := uc.retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		payment, err := uc.paymentRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, payment.AccountID)
		if err != nil {
			return err
		}

		removed, err := uc.paymentRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if !removed {
			return domain.ErrPaymentNotFound
		}

		reversed := account.ApplyEffect(payment.SignedAmount().Neg())
		if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, reversed, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		deleted = payment

		return nil
	})
	if err != nil {
		uc.countError(err)
		return err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsDeleted.Inc()
	}

	uc.auditor.Record(ctx, domain.AuditActionPaymentDelete, "payment", id, deleted, nil)

	return nil
}

// ListPaymentsInput represents input for listing payments.
type ListPaymentsInput struct {
	Page      int
	Limit     int
	Search    string
	AccountID int64
}

// ListPayments lists payments newest first. Search matches description or the
// joined account name case-insensitively; AccountID filters exactly, combined
// with search using AND semantics.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, input ListPaymentsInput) ([]*domain.Payment, Pagination, error) {
	page := NormalizePage(input.Page, input.Limit)

	payments, total, err := uc.paymentRepo.List(ctx, page, input.Search, input.AccountID)
	if err != nil {
		return nil, Pagination{}, err
	}

	return payments, NewPagination(page, total), nil
}

// RecentPayments returns the most recently created payments.
func (uc *PaymentUseCase) RecentPayments(ctx context.Context, limit int) ([]*domain.Payment, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return uc.paymentRepo.Recent(ctx, limit)
}

// lockAccountPair locks two distinct accounts FOR UPDATE in ascending ID
// order to avoid lock-order deadlocks between concurrent reassignments.
func (uc *PaymentUseCase) lockAccountPair(ctx context.Context, tx Transaction, a, b int64) (map[int64]*domain.Account, error) {
	ids := []int64{a, b}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	if len(accounts) != len(ids) {
		return nil, domain.ErrAccountNotFound
	}

	byID := make(map[int64]*domain.Account, len(accounts))
	for _, account := range accounts {
		byID[account.ID] = account
	}

	return byID, nil
}

func (uc *PaymentUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}

	return uc.retrier.Retry(ctx, operation)
}

func (uc *PaymentUseCase) countError(err error) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.PaymentErrors.WithLabelValues(errorType(err)).Inc()
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return "payment_not_found"
	default:
		return "store"
	}
}

func validatePaymentFields(accountID int64, amount decimal.Decimal, description string, paymentType domain.PaymentType) error {
	if err := domain.ValidateAccountID(accountID); err != nil {
		return err
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}
	if err := domain.ValidateDescription(description); err != nil {
		return err
	}

	return domain.ValidatePaymentType(paymentType)
}

func validatePaymentPatch(patch domain.PaymentPatch) error {
	if patch.AccountID != nil {
		if err := domain.ValidateAccountID(*patch.AccountID); err != nil {
			return err
		}
	}
	if patch.Amount != nil {
		if err := domain.ValidateAmount(*patch.Amount); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := domain.ValidateDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Type != nil {
		if err := domain.ValidatePaymentType(*patch.Type); err != nil {
			return err
		}
	}

	return nil
}
