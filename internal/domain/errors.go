package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Payment errors
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPaymentType = errors.New("payment type must be credit or debit")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
