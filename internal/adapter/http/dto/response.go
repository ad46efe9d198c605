package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

// Response is the envelope every successful API response is wrapped in.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope for failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Pagination describes a listing window.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// PaginationFromUseCase converts usecase pagination to the wire shape.
func PaginationFromUseCase(p usecase.Pagination) *Pagination {
	return &Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	AccountName *string         `json:"account_name"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID,
		AccountID:   p.AccountID,
		Amount:      p.Amount,
		Date:        p.Date.Format(dateLayout),
		Description: p.Description,
		Type:        string(p.Type),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		AccountName: p.AccountName,
	}
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}
	return result
}

// AccountSummaryResponse pairs an account with totals over its payments.
type AccountSummaryResponse struct {
	Account *AccountResponse     `json:"account"`
	Summary AccountSummaryTotals `json:"summary"`
}

// AccountSummaryTotals carries the sign-based credit/debit split.
type AccountSummaryTotals struct {
	TotalTransactions int64           `json:"total_transactions"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
	TotalDebits       decimal.Decimal `json:"total_debits"`
}

// AccountSummaryFromDomain converts a domain summary to a response.
func AccountSummaryFromDomain(s *domain.AccountSummary) *AccountSummaryResponse {
	return &AccountSummaryResponse{
		Account: AccountFromDomain(&s.Account),
		Summary: AccountSummaryTotals{
			TotalTransactions: s.TotalTransactions,
			TotalCredits:      s.TotalCredits,
			TotalDebits:       s.TotalDebits,
		},
	}
}

// DashboardSummaryResponse is the dashboard payload.
type DashboardSummaryResponse struct {
	Summary        DashboardTotals    `json:"summary"`
	RecentPayments []*PaymentResponse `json:"recentPayments"`
	TopAccounts    []*AccountResponse `json:"topAccounts"`
	PaymentTrends  []TrendBucket      `json:"paymentTrends"`
}

// DashboardTotals carries ledger-wide totals.
type DashboardTotals struct {
	TotalAccounts int64           `json:"totalAccounts"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	TotalPayments int64           `json:"totalPayments"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	TotalDebits   decimal.Decimal `json:"totalDebits"`
}

// TrendBucket is one day of payment activity.
type TrendBucket struct {
	Date   string          `json:"date"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardSummaryFromDomain converts a domain summary to a response.
func DashboardSummaryFromDomain(s *domain.DashboardSummary) *DashboardSummaryResponse {
	trends := make([]TrendBucket, len(s.PaymentTrends))
	for i, t := range s.PaymentTrends {
		trends[i] = TrendBucket{
			Date:   t.Date.Format(dateLayout),
			Count:  t.Count,
			Amount: t.Amount,
		}
	}

	return &DashboardSummaryResponse{
		Summary: DashboardTotals{
			TotalAccounts: s.TotalAccounts,
			TotalBalance:  s.TotalBalance,
			TotalPayments: s.TotalPayments,
			TotalCredits:  s.TotalCredits,
			TotalDebits:   s.TotalDebits,
		},
		RecentPayments: PaymentsFromDomain(s.RecentPayments),
		TopAccounts:    AccountsFromDomain(s.TopAccounts),
		PaymentTrends:  trends,
	}
}

// TokenResponse carries a freshly issued demo token.
type TokenResponse struct {
	Token     string    `json:"token"`
	User      UserInfo  `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserInfo identifies the token bearer.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
