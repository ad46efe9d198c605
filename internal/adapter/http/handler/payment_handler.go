package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/payledger/internal/adapter/http/dto"
	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

// PaymentService defines the behavior needed by PaymentHandler.
type PaymentService interface {
	CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
	ListPayments(ctx context.Context, input usecase.ListPaymentsInput) ([]*domain.Payment, usecase.Pagination, error)
	RecentPayments(ctx context.Context, limit int) ([]*domain.Payment, error)
}

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	paymentUC PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Create creates a new payment and adjusts the owning account's balance.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := h.paymentUC.CreatePayment(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, "failed to create payment")
		return
	}

	writeMessage(w, http.StatusCreated, dto.PaymentFromDomain(payment), "Payment created successfully")
}

// Get retrieves a payment by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}

	payment, err := h.paymentUC.GetPayment(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to fetch payment")
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// Update applies a partial payment update, reconciling account balances.
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}

	var req dto.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := h.paymentUC.UpdatePayment(r.Context(), id, patch)
	if err != nil {
		writeDomainError(w, err, "failed to update payment")
		return
	}

	writeMessage(w, http.StatusOK, dto.PaymentFromDomain(payment), "Payment updated successfully")
}

// Delete removes a payment and reverses its balance effect.
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}

	if err := h.paymentUC.DeletePayment(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete payment")
		return
	}

	writeMessage(w, http.StatusOK, nil, "Payment deleted successfully")
}

// List lists payments with pagination, search, and account filter.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, pagination, err := h.paymentUC.ListPayments(r.Context(), usecase.ListPaymentsInput{
		Page:      parseIntQuery(r, "page", usecase.DefaultPage),
		Limit:     parseIntQuery(r, "limit", usecase.DefaultLimit),
		Search:    r.URL.Query().Get("search"),
		AccountID: parseInt64Query(r, "account_id"),
	})
	if err != nil {
		writeDomainError(w, err, "failed to fetch payments")
		return
	}

	writeList(w, dto.PaymentsFromDomain(payments), dto.PaginationFromUseCase(pagination))
}

// Recent returns the most recently created payments.
func (h *PaymentHandler) Recent(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentUC.RecentPayments(r.Context(), parseIntQuery(r, "limit", usecase.DefaultRecentLimit))
	if err != nil {
		writeDomainError(w, err, "failed to fetch recent payments")
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentsFromDomain(payments))
}
