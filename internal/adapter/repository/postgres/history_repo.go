package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// HistoryRepository implements usecase.HistoryRepository on the cash_history
// table, one row per (account_kind, account_id, date).
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

const upsertHistorySQL = `
INSERT INTO cash_history (account_kind, account_id, date, opening_balance, closing_balance, total_income, total_expense, total_transfer, net_change, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (account_kind, account_id, date)
DO UPDATE SET
    opening_balance = EXCLUDED.opening_balance,
    closing_balance = EXCLUDED.closing_balance,
    total_income = EXCLUDED.total_income,
    total_expense = EXCLUDED.total_expense,
    total_transfer = EXCLUDED.total_transfer,
    net_change = EXCLUDED.net_change
`

// Upsert inserts or replaces one account's snapshot for one date.
func (r *HistoryRepository) Upsert(ctx context.Context, record *domain.DailyHistoryRecord) error {
	_, err := r.pool.Exec(ctx, upsertHistorySQL,
		string(record.Account.Kind),
		record.Account.ID,
		timeToPgDate(record.Date),
		decimalToNumeric(record.OpeningBalance),
		decimalToNumeric(record.ClosingBalance),
		decimalToNumeric(record.TotalIncome),
		decimalToNumeric(record.TotalExpense),
		decimalToNumeric(record.TotalTransfer),
		decimalToNumeric(record.NetChange),
		timeToPgTimestamptz(record.CreatedAt),
	)

	return err
}

const getHistorySQL = `
SELECT account_kind, account_id, date, opening_balance, closing_balance, total_income, total_expense, total_transfer, net_change, created_at
FROM cash_history
WHERE account_kind = $1 AND account_id = $2 AND date = $3
`

// GetByAccountDate retrieves one account's snapshot for one date.
func (r *HistoryRepository) GetByAccountDate(ctx context.Context, account domain.AccountRef, date time.Time) (*domain.DailyHistoryRecord, error) {
	record, err := scanHistory(r.pool.QueryRow(ctx, getHistorySQL, string(account.Kind), account.ID, timeToPgDate(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHistoryNotFound
		}

		return nil, err
	}

	return record, nil
}

func scanHistory(row pgx.Row) (*domain.DailyHistoryRecord, error) {
	var (
		record   domain.DailyHistoryRecord
		kind     string
		date     pgtype.Date
		opening  pgtype.Numeric
		closing  pgtype.Numeric
		income   pgtype.Numeric
		expense  pgtype.Numeric
		transfer pgtype.Numeric
		net      pgtype.Numeric
	)

	err := row.Scan(
		&kind,
		&record.Account.ID,
		&date,
		&opening,
		&closing,
		&income,
		&expense,
		&transfer,
		&net,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Account.Kind = domain.AccountKind(kind)
	record.Date = pgDateToTime(date)
	record.OpeningBalance = numericToDecimal(opening)
	record.ClosingBalance = numericToDecimal(closing)
	record.TotalIncome = numericToDecimal(income)
	record.TotalExpense = numericToDecimal(expense)
	record.TotalTransfer = numericToDecimal(transfer)
	record.NetChange = numericToDecimal(net)

	return &record, nil
}

// List lists snapshots, newest date first, optionally filtered by account
// and date.
func (r *HistoryRepository) List(ctx context.Context, filter usecase.HistoryFilter) ([]*domain.DailyHistoryRecord, error) {
	query := `
SELECT account_kind, account_id, date, opening_balance, closing_balance, total_income, total_expense, total_transfer, net_change, created_at
FROM cash_history`

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
			where = fmt.Sprintf(" WHERE date = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND date = $%d", len(args))
		}
	}

	args = append(args, int32(filter.Limit), int32(filter.Offset))
	query += where + fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.DailyHistoryRecord

	for rows.Next() {
		record, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}
