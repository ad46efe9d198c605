package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidDescription = errors.New("invalid description")
	ErrNegativeBalance    = errors.New("balance cannot be negative")
	ErrInvalidAccountID   = errors.New("invalid account id")
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MaxDescriptionLength = 500
)

// ValidateAccountName validates an account name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateDescription validates a payment description.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidDescription)
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateAmount validates a payment amount. The sign convention lives in
// PaymentType, so the stored amount itself must be strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateBalance validates an initial or overridden account balance.
func ValidateBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}

// ValidateAccountID validates an account reference.
func ValidateAccountID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAccountID, id)
	}

	return nil
}

// ValidatePaymentType validates a payment type.
func ValidatePaymentType(t PaymentType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentType, string(t))
	}

	return nil
}
