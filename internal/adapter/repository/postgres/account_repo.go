package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

const accountColumns = "id, name, balance, created_at, updated_at"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts a new account. The store assigns ID and timestamps, which
// are written back into the passed account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (name, balance)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query, account.Name, decimalToNumeric(account.Balance)).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id))
}

// GetByIDForUpdate retrieves an account by ID with a FOR UPDATE lock.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanAccount(pgxTx.QueryRow(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1 FOR UPDATE", id))
}

// GetByIDsForUpdate retrieves multiple accounts with FOR UPDATE locks,
// acquiring them in ascending ID order.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// Update applies a partial update to name and/or balance.
func (r *AccountRepository) Update(ctx context.Context, id int64, patch domain.AccountPatch) (*domain.Account, error) {
	set := "updated_at = now()"
	args := []any{id}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set += ", name = $2"
	}
	if patch.Balance != nil {
		args = append(args, decimalToNumeric(*patch.Balance))
		if patch.Name != nil {
			set += ", balance = $3"
		} else {
			set += ", balance = $2"
		}
	}

	query := "UPDATE accounts SET " + set + " WHERE id = $1 RETURNING " + accountColumns

	return scanAccount(r.pool.QueryRow(ctx, query, args...))
}

// UpdateBalance writes an account's balance inside a transaction.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		"UPDATE accounts SET balance = $2, updated_at = $3 WHERE id = $1",
		id, decimalToNumeric(balance), updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account. Payments under it are removed by the store's
// ON DELETE CASCADE rule.
func (r *AccountRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// List returns one page of accounts, newest first, with the total count of
// rows matching the search filter.
func (r *AccountRepository) List(ctx context.Context, page usecase.Page, search string) ([]*domain.Account, int64, error) {
	where := ""
	args := []any{}

	if search != "" {
		where = " WHERE name ILIKE '%' || $1 || '%'"
		args = append(args, search)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM accounts"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	args = append(args, page.Limit, page.Offset())

	query := "SELECT " + accountColumns + " FROM accounts" + where +
		" ORDER BY created_at DESC, id DESC" +
		" LIMIT $" + strconv.Itoa(limitPos) + " OFFSET $" + strconv.Itoa(limitPos+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// Summary returns the account plus totals over its payment history. The
// credit/debit split here follows the raw sign of the stored amount.
func (r *AccountRepository) Summary(ctx context.Context, id int64) (*domain.AccountSummary, error) {
	account, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN amount < 0 THEN ABS(amount) ELSE 0 END), 0)
		FROM payments
		WHERE account_id = $1
	`

	summary := &domain.AccountSummary{Account: *account}

	var credits, debits pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query, id).Scan(&summary.TotalTransactions, &credits, &debits); err != nil {
		return nil, err
	}

	summary.TotalCredits = numericToDecimal(credits)
	summary.TotalDebits = numericToDecimal(debits)

	return summary, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account domain.Account
		balance pgtype.Numeric
	)

	err := row.Scan(&account.ID, &account.Name, &balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.Balance = numericToDecimal(balance)

	return &account, nil
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
