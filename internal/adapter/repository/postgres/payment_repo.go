package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/usecase"
)

// paymentColumns joins the account name so every fetched payment carries it.
// The LEFT JOIN keeps a payment readable even if its account row is gone.
const (
	paymentColumns = `p.id, p.account_id, p.amount, p.date, p.description, p.type,
		p.created_at, p.updated_at, a.name`
	paymentFrom = " FROM payments p LEFT JOIN accounts a ON p.account_id = a.id"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create inserts a payment inside the given transaction. The store assigns
// ID and timestamps, written back into the passed payment.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO payments (account_id, amount, date, description, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return pgxTx.QueryRow(ctx, query,
		payment.AccountID,
		decimalToNumeric(payment.Amount),
		payment.Date,
		payment.Description,
		string(payment.Type),
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

// GetByID retrieves a payment with its account name joined in.
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return scanPayment(r.pool.QueryRow(ctx,
		"SELECT "+paymentColumns+paymentFrom+" WHERE p.id = $1", id))
}

// GetByIDForUpdate retrieves a payment with a FOR UPDATE lock on the payment
// row (the join target is not locked).
func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Payment, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanPayment(pgxTx.QueryRow(ctx,
		"SELECT "+paymentColumns+paymentFrom+" WHERE p.id = $1 FOR UPDATE OF p", id))
}

// Update writes all mutable payment fields inside the given transaction.
func (r *PaymentRepository) Update(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE payments
		SET account_id = $2, amount = $3, date = $4, description = $5, type = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query,
		payment.ID,
		payment.AccountID,
		decimalToNumeric(payment.Amount),
		payment.Date,
		payment.Description,
		string(payment.Type),
		payment.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

// Delete removes a payment inside the given transaction.
func (r *PaymentRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) (bool, error) {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, "DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// List returns one page of payments, newest first. Search matches the
// description or the joined account name; accountID (when > 0) filters
// exactly, ANDed with the search.
func (r *PaymentRepository) List(ctx context.Context, page usecase.Page, search string, accountID int64) ([]*domain.Payment, int64, error) {
	where := ""
	args := []any{}

	if search != "" {
		args = append(args, search)
		where = " WHERE (p.description ILIKE '%' || $1 || '%' OR a.name ILIKE '%' || $1 || '%')"
	}

	if accountID > 0 {
		args = append(args, accountID)
		cond := "p.account_id = $" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*)"+paymentFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	args = append(args, page.Limit, page.Offset())

	query := "SELECT " + paymentColumns + paymentFrom + where +
		" ORDER BY p.created_at DESC, p.id DESC" +
		" LIMIT $" + strconv.Itoa(limitPos) + " OFFSET $" + strconv.Itoa(limitPos+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// Recent returns the most recently created payments with account names.
func (r *PaymentRepository) Recent(ctx context.Context, limit int) ([]*domain.Payment, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+paymentColumns+paymentFrom+" ORDER BY p.created_at DESC, p.id DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		payment     domain.Payment
		amount      pgtype.Numeric
		paymentType string
	)

	err := row.Scan(
		&payment.ID,
		&payment.AccountID,
		&amount,
		&payment.Date,
		&payment.Description,
		&paymentType,
		&payment.CreatedAt,
		&payment.UpdatedAt,
		&payment.AccountName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	payment.Amount = numericToDecimal(amount)
	payment.Type = domain.PaymentType(paymentType)

	return &payment, nil
}

func collectPayments(rows pgx.Rows) ([]*domain.Payment, error) {
	var payments []*domain.Payment

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
