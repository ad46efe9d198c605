// Package mocks provides hand-written mock implementations of the usecase
// interfaces. Every mock keeps a small in-memory default behavior and lets
// individual tests override any method through its Func field.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	nextID   int64

	CreateFunc            func(ctx context.Context, account *domain.Account) error
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error)
	UpdateFunc            func(ctx context.Context, id int64, patch domain.AccountPatch) (*domain.Account, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	DeleteFunc            func(ctx context.Context, id int64) (bool, error)
	ListFunc              func(ctx context.Context, page usecase.Page, search string) ([]*domain.Account, int64, error)
	SummaryFunc           func(ctx context.Context, id int64) (*domain.AccountSummary, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
		nextID:   1,
	}
}

// Seed stores an account without going through Create.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	if account.ID >= m.nextID {
		m.nextID = account.ID + 1
	}
}

// Account returns the stored account, or nil.
func (m *MockAccountRepository) Account(id int64) *domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accounts[id]
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			copied := *acc
			accounts = append(accounts, &copied)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, id int64, patch domain.AccountPatch) (*domain.Account, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Name != nil {
		acc.Name = *patch.Name
	}
	if patch.Balance != nil {
		acc.Balance = *patch.Balance
	}
	acc.UpdatedAt = time.Now().UTC()
	copied := *acc
	return &copied, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Balance = balance
	acc.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return false, nil
	}
	delete(m.accounts, id)
	return true, nil
}

func (m *MockAccountRepository) List(ctx context.Context, page usecase.Page, search string) ([]*domain.Account, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, search)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		copied := *acc
		accounts = append(accounts, &copied)
	}
	return accounts, int64(len(accounts)), nil
}

func (m *MockAccountRepository) Summary(ctx context.Context, id int64) (*domain.AccountSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, id)
	}
	acc, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AccountSummary{Account: *acc}, nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[int64]*domain.Payment
	nextID   int64

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Payment, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Payment, error)
	UpdateFunc           func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id int64) (bool, error)
	ListFunc             func(ctx context.Context, page usecase.Page, search string, accountID int64) ([]*domain.Payment, int64, error)
	RecentFunc           func(ctx context.Context, limit int) ([]*domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[int64]*domain.Payment),
		nextID:   1,
	}
}

// Seed stores a payment without going through Create.
func (m *MockPaymentRepository) Seed(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	if payment.ID >= m.nextID {
		m.nextID = payment.ID + 1
	}
}

// Payment returns the stored payment, or nil.
func (m *MockPaymentRepository) Payment(id int64) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[id]
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Payment, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPaymentRepository) Update(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; !ok {
		return domain.ErrPaymentNotFound
	}
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

func (m *MockPaymentRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return false, nil
	}
	delete(m.payments, id)
	return true, nil
}

func (m *MockPaymentRepository) List(ctx context.Context, page usecase.Page, search string, accountID int64) ([]*domain.Payment, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, search, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var payments []*domain.Payment
	for _, p := range m.payments {
		if accountID > 0 && p.AccountID != accountID {
			continue
		}
		copied := *p
		payments = append(payments, &copied)
	}
	return payments, int64(len(payments)), nil
}

func (m *MockPaymentRepository) Recent(ctx context.Context, limit int) ([]*domain.Payment, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	payments, _, err := m.List(ctx, usecase.Page{Page: 1, Limit: limit}, "", 0)
	if err != nil {
		return nil, err
	}
	if len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}

// MockDashboardRepository is a mock implementation of DashboardRepository.
type MockDashboardRepository struct {
	AccountTotalsFunc func(ctx context.Context) (int64, decimal.Decimal, error)
	PaymentTotalsFunc func(ctx context.Context) (int64, decimal.Decimal, decimal.Decimal, error)
	TopAccountsFunc   func(ctx context.Context, limit int) ([]*domain.Account, error)
	PaymentTrendsFunc func(ctx context.Context, window time.Duration, buckets int) ([]domain.TrendBucket, error)
}

func NewMockDashboardRepository() *MockDashboardRepository {
	return &MockDashboardRepository{}
}

func (m *MockDashboardRepository) AccountTotals(ctx context.Context) (int64, decimal.Decimal, error) {
	if m.AccountTotalsFunc != nil {
		return m.AccountTotalsFunc(ctx)
	}
	return 0, decimal.Zero, nil
}

func (m *MockDashboardRepository) PaymentTotals(ctx context.Context) (int64, decimal.Decimal, decimal.Decimal, error) {
	if m.PaymentTotalsFunc != nil {
		return m.PaymentTotalsFunc(ctx)
	}
	return 0, decimal.Zero, decimal.Zero, nil
}

func (m *MockDashboardRepository) TopAccounts(ctx context.Context, limit int) ([]*domain.Account, error) {
	if m.TopAccountsFunc != nil {
		return m.TopAccountsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockDashboardRepository) PaymentTrends(ctx context.Context, window time.Duration, buckets int) ([]domain.TrendBucket, error) {
	if m.PaymentTrendsFunc != nil {
		return m.PaymentTrendsFunc(ctx, window, buckets)
	}
	return nil, nil
}

// MockAuditRepository records audit log writes.
type MockAuditRepository struct {
	mu   sync.Mutex
	Logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, log)
	return nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockRetrier runs the operation once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
