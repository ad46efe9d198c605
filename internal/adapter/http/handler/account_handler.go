package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/payledger/internal/adapter/http/dto"
	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, input usecase.UpdateAccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, usecase.Pagination, error)
	GetAccountSummary(ctx context.Context, id int64) (*domain.AccountSummary, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to create account")
		return
	}

	writeMessage(w, http.StatusCreated, dto.AccountFromDomain(account), "Account created successfully")
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to fetch account")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Update applies a partial account update.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID")
		return
	}

	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountUC.UpdateAccount(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to update account")
		return
	}

	writeMessage(w, http.StatusOK, dto.AccountFromDomain(account), "Account updated successfully")
}

// Delete removes an account and, via cascade, its payments.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID")
		return
	}

	if err := h.accountUC.DeleteAccount(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete account")
		return
	}

	writeMessage(w, http.StatusOK, nil, "Account deleted successfully")
}

// List lists accounts with pagination and search.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, pagination, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Page:   parseIntQuery(r, "page", usecase.DefaultPage),
		Limit:  parseIntQuery(r, "limit", usecase.DefaultLimit),
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		writeDomainError(w, err, "failed to fetch accounts")
		return
	}

	writeList(w, dto.AccountsFromDomain(accounts), dto.PaginationFromUseCase(pagination))
}

// Summary returns the account plus payment totals.
func (h *AccountHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID")
		return
	}

	summary, err := h.accountUC.GetAccountSummary(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to fetch account summary")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountSummaryFromDomain(summary))
}
