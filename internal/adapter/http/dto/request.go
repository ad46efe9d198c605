package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

// dateLayout is the wire format of payment dates.
const dateLayout = "2006-01-02"

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name    string           `json:"name"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:    r.Name,
		Balance: r.Balance,
	}
}

// UpdateAccountRequest represents a partial account update. Absent fields
// keep their previous value.
type UpdateAccountRequest struct {
	Name    *string          `json:"name,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Name:    r.Name,
		Balance: r.Balance,
	}
}

// CreatePaymentRequest represents a request to create a payment.
type CreatePaymentRequest struct {
	AccountID   int64           `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *string         `json:"date,omitempty"`
	Description string          `json:"description"`
	Type        string          `json:"type,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePaymentRequest) ToUseCaseInput() (usecase.CreatePaymentInput, error) {
	input := usecase.CreatePaymentInput{
		AccountID:   r.AccountID,
		Amount:      r.Amount,
		Description: r.Description,
		Type:        domain.PaymentType(r.Type),
	}

	if r.Date != nil {
		date, err := parseDate(*r.Date)
		if err != nil {
			return usecase.CreatePaymentInput{}, err
		}
		input.Date = &date
	}

	return input, nil
}

// UpdatePaymentRequest represents a partial payment update.
type UpdatePaymentRequest struct {
	AccountID   *int64           `json:"account_id,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Type        *string          `json:"type,omitempty"`
}

// ToPatch converts to a domain payment patch.
func (r *UpdatePaymentRequest) ToPatch() (domain.PaymentPatch, error) {
	patch := domain.PaymentPatch{
		AccountID:   r.AccountID,
		Amount:      r.Amount,
		Description: r.Description,
	}

	if r.Type != nil {
		paymentType := domain.PaymentType(*r.Type)
		patch.Type = &paymentType
	}

	if r.Date != nil {
		date, err := parseDate(*r.Date)
		if err != nil {
			return domain.PaymentPatch{}, err
		}
		patch.Date = &date
	}

	return patch, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return date, nil
}
