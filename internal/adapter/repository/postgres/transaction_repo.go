package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const createTransactionSQL = `
INSERT INTO transactions (id, account_kind, account_id, kind, category, amount, payment_method, notes, transaction_date, staff_email, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// Create inserts one posting into the transaction log.
func (r *TransactionRepository) Create(ctx context.Context, record *domain.TransactionRecord) error {
	_, err := r.pool.Exec(ctx, createTransactionSQL,
		record.ID,
		string(record.Account.Kind),
		record.Account.ID,
		string(record.Kind),
		record.Category,
		decimalToNumeric(record.Amount),
		record.PaymentMethod,
		record.Notes,
		timeToPgDate(record.TransactionDate),
		record.StaffEmail,
		timeToPgTimestamptz(record.CreatedAt),
	)

	return err
}

const deleteTransactionSQL = `DELETE FROM transactions WHERE id = $1`

// Delete removes a posting. Used only to compensate a failed transfer step.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteTransactionSQL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

const getTransactionSQL = `
SELECT id, account_kind, account_id, kind, category, amount, payment_method, notes, transaction_date, staff_email, created_at
FROM transactions
WHERE id = $1
`

// GetByID retrieves a posting by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	record, err := scanTransaction(r.pool.QueryRow(ctx, getTransactionSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return record, nil
}

// List lists postings, newest first, optionally filtered by account and date.
func (r *TransactionRepository) List(ctx context.Context, filter usecase.TransactionFilter) ([]*domain.TransactionRecord, error) {
	query := `
SELECT id, account_kind, account_id, kind, category, amount, payment_method, notes, transaction_date, staff_email, created_at
FROM transactions`

	var (
		args  []any
		where string
	)

	if filter.Account != nil {
		args = append(args, string(filter.Account.Kind), filter.Account.ID)
		where = fmt.Sprintf(" WHERE account_kind = $%d AND account_id = $%d", len(args)-1, len(args))
	}

	if filter.Date != nil {
		args = append(args, timeToPgDate(*filter.Date))
		if where == "" {
			where = fmt.Sprintf(" WHERE transaction_date = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND transaction_date = $%d", len(args))
		}
	}

	args = append(args, int32(filter.Limit), int32(filter.Offset))
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.TransactionRecord

	for rows.Next() {
		record, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

const sumByDateSQL = `
SELECT kind, COALESCE(SUM(amount), 0)
FROM transactions
WHERE account_kind = $1 AND account_id = $2 AND transaction_date = $3
GROUP BY kind
`

// SumByDate totals one account's postings for one calendar date, grouped by
// transaction kind.
func (r *TransactionRepository) SumByDate(ctx context.Context, account domain.AccountRef, date time.Time) (domain.DailyTotals, error) {
	totals := domain.DailyTotals{
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Transfer: decimal.Zero,
	}

	rows, err := r.pool.Query(ctx, sumByDateSQL, string(account.Kind), account.ID, timeToPgDate(date))
	if err != nil {
		return totals, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			sum  pgtype.Numeric
		)

		if err := rows.Scan(&kind, &sum); err != nil {
			return totals, err
		}

		switch domain.TransactionKind(kind) {
		case domain.KindIncome:
			totals.Income = numericToDecimal(sum)
		case domain.KindExpense:
			totals.Expense = numericToDecimal(sum)
		case domain.KindTransfer:
			totals.Transfer = numericToDecimal(sum)
		}
	}

	return totals, rows.Err()
}

const sumSignedSQL = `
SELECT COALESCE(SUM(CASE WHEN kind = 'income' THEN amount ELSE -amount END), 0)
FROM transactions
WHERE account_kind = $1 AND account_id = $2
`

// SumSigned returns the balance implied by one account's full posting history.
func (r *TransactionRepository) SumSigned(ctx context.Context, account domain.AccountRef) (decimal.Decimal, error) {
	var sum pgtype.Numeric

	err := r.pool.QueryRow(ctx, sumSignedSQL, string(account.Kind), account.ID).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func scanTransaction(row pgx.Row) (*domain.TransactionRecord, error) {
	var (
		record          domain.TransactionRecord
		accountKind     string
		kind            string
		amount          pgtype.Numeric
		transactionDate pgtype.Date
	)

	err := row.Scan(
		&record.ID,
		&accountKind,
		&record.Account.ID,
		&kind,
		&record.Category,
		&amount,
		&record.PaymentMethod,
		&record.Notes,
		&transactionDate,
		&record.StaffEmail,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Account.Kind = domain.AccountKind(accountKind)
	record.Kind = domain.TransactionKind(kind)
	record.Amount = numericToDecimal(amount)
	record.TransactionDate = pgDateToTime(transactionDate)

	return &record, nil
}
