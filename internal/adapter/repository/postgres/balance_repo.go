package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// BalanceRepository implements usecase.BalanceRepository on the
// cash_balances table, one row per (account_kind, account_id).
type BalanceRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool, retrier *Retrier) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getBalanceSQL = `
SELECT account_kind, account_id, current_balance, last_updated
FROM cash_balances
WHERE account_kind = $1 AND account_id = $2
`

// Get retrieves an account's balance entry.
func (r *BalanceRepository) Get(ctx context.Context, account domain.AccountRef) (*domain.BalanceEntry, error) {
	entry, err := scanBalance(r.pool.QueryRow(ctx, getBalanceSQL, string(account.Kind), account.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	return entry, nil
}

const listBalancesSQL = `
SELECT account_kind, account_id, current_balance, last_updated
FROM cash_balances
ORDER BY account_kind, account_id
`

// List lists every balance entry.
func (r *BalanceRepository) List(ctx context.Context) ([]*domain.BalanceEntry, error) {
	rows, err := r.pool.Query(ctx, listBalancesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.BalanceEntry

	for rows.Next() {
		entry, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// The single-statement upsert makes concurrent deltas against one account
// serialize inside PostgreSQL: no read-modify-write window exists.
const applyDeltaSQL = `
INSERT INTO cash_balances (account_kind, account_id, current_balance, last_updated)
VALUES ($1, $2, $3, $4)
ON CONFLICT (account_kind, account_id)
DO UPDATE SET
    current_balance = cash_balances.current_balance + EXCLUDED.current_balance,
    last_updated = EXCLUDED.last_updated
RETURNING account_kind, account_id, current_balance, last_updated
`

// ApplyDelta atomically increments an account's balance, creating the entry
// with the delta as its initial value when absent.
func (r *BalanceRepository) ApplyDelta(ctx context.Context, account domain.AccountRef, delta decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error) {
	var entry *domain.BalanceEntry

	err := r.retrier.Retry(ctx, func() error {
		var err error

		entry, err = scanBalance(r.pool.QueryRow(ctx, applyDeltaSQL,
			string(account.Kind),
			account.ID,
			decimalToNumeric(delta),
			timeToPgTimestamptz(updatedAt),
		))

		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

const setAbsoluteSQL = `
INSERT INTO cash_balances (account_kind, account_id, current_balance, last_updated)
VALUES ($1, $2, $3, $4)
ON CONFLICT (account_kind, account_id)
DO UPDATE SET
    current_balance = EXCLUDED.current_balance,
    last_updated = EXCLUDED.last_updated
RETURNING account_kind, account_id, current_balance, last_updated
`

// SetAbsolute overwrites an account's balance with an absolute value.
func (r *BalanceRepository) SetAbsolute(ctx context.Context, account domain.AccountRef, value decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error) {
	var entry *domain.BalanceEntry

	err := r.retrier.Retry(ctx, func() error {
		var err error

		entry, err = scanBalance(r.pool.QueryRow(ctx, setAbsoluteSQL,
			string(account.Kind),
			account.ID,
			decimalToNumeric(value),
			timeToPgTimestamptz(updatedAt),
		))

		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func scanBalance(row pgx.Row) (*domain.BalanceEntry, error) {
	var (
		entry   domain.BalanceEntry
		kind    string
		balance pgtype.Numeric
	)

	err := row.Scan(&kind, &entry.Account.ID, &balance, &entry.LastUpdated)
	if err != nil {
		return nil, err
	}

	entry.Account.Kind = domain.AccountKind(kind)
	entry.CurrentBalance = numericToDecimal(balance)

	return &entry, nil
}
