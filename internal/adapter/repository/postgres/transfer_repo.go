package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// TransferRepository implements usecase.TransferRepository.
type TransferRepository struct {
	pool *pgxpool.Pool
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{pool: pool}
}

const createTransferSQL = `
INSERT INTO transfers (id, reference, from_kind, from_id, to_kind, to_id, amount, notes, transaction_date, staff_email, outgoing_transaction_id, incoming_transaction_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

// Create creates a transfer record linking both transaction legs.
func (r *TransferRepository) Create(ctx context.Context, transfer *domain.TransferRecord) error {
	_, err := r.pool.Exec(ctx, createTransferSQL,
		transfer.ID,
		transfer.Reference,
		string(transfer.From.Kind),
		transfer.From.ID,
		string(transfer.To.Kind),
		transfer.To.ID,
		decimalToNumeric(transfer.Amount),
		transfer.Notes,
		timeToPgDate(transfer.TransactionDate),
		transfer.StaffEmail,
		transfer.OutgoingTransactionID,
		transfer.IncomingTransactionID,
		timeToPgTimestamptz(transfer.CreatedAt),
	)

	return err
}

const getTransferSQL = `
SELECT id, reference, from_kind, from_id, to_kind, to_id, amount, notes, transaction_date, staff_email, outgoing_transaction_id, incoming_transaction_id, created_at
FROM transfers
WHERE id = $1
`

// GetByID retrieves a transfer record by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.TransferRecord, error) {
	transfer, err := scanTransfer(r.pool.QueryRow(ctx, getTransferSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}

		return nil, err
	}

	return transfer, nil
}

const listTransfersSQL = `
SELECT id, reference, from_kind, from_id, to_kind, to_id, amount, notes, transaction_date, staff_email, outgoing_transaction_id, incoming_transaction_id, created_at
FROM transfers
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// List lists transfer records, newest first.
func (r *TransferRepository) List(ctx context.Context, limit, offset int) ([]*domain.TransferRecord, error) {
	rows, err := r.pool.Query(ctx, listTransfersSQL, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*domain.TransferRecord

	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}

		transfers = append(transfers, transfer)
	}

	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row) (*domain.TransferRecord, error) {
	var (
		transfer        domain.TransferRecord
		fromKind        string
		toKind          string
		amount          pgtype.Numeric
		transactionDate pgtype.Date
	)

	err := row.Scan(
		&transfer.ID,
		&transfer.Reference,
		&fromKind,
		&transfer.From.ID,
		&toKind,
		&transfer.To.ID,
		&amount,
		&transfer.Notes,
		&transactionDate,
		&transfer.StaffEmail,
		&transfer.OutgoingTransactionID,
		&transfer.IncomingTransactionID,
		&transfer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	transfer.From.Kind = domain.AccountKind(fromKind)
	transfer.To.Kind = domain.AccountKind(toKind)
	transfer.Amount = numericToDecimal(amount)
	transfer.TransactionDate = pgDateToTime(transactionDate)

	return &transfer, nil
}
