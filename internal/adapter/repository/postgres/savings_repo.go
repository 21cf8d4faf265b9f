package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// SavingsAccountRepository implements usecase.SavingsAccountRepository.
type SavingsAccountRepository struct {
	pool *pgxpool.Pool
}

// NewSavingsAccountRepository creates a new SavingsAccountRepository.
func NewSavingsAccountRepository(pool *pgxpool.Pool) *SavingsAccountRepository {
	return &SavingsAccountRepository{pool: pool}
}

const createSavingsSQL = `
INSERT INTO savings_accounts (id, code, name, account_type, bank_name, account_number, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// Create creates a new savings account.
func (r *SavingsAccountRepository) Create(ctx context.Context, account *domain.SavingsAccount) error {
	_, err := r.pool.Exec(ctx, createSavingsSQL,
		account.ID,
		account.Code,
		account.Name,
		account.AccountType,
		account.BankName,
		account.AccountNumber,
		string(account.Status),
		account.Notes,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

const getSavingsSQL = `
SELECT id, code, name, account_type, bank_name, account_number, status, notes, created_at, updated_at
FROM savings_accounts
WHERE id = $1
`

// GetByID retrieves a savings account by ID.
func (r *SavingsAccountRepository) GetByID(ctx context.Context, id string) (*domain.SavingsAccount, error) {
	account, err := scanSavingsAccount(r.pool.QueryRow(ctx, getSavingsSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSavingsAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

const listSavingsSQL = `
SELECT id, code, name, account_type, bank_name, account_number, status, notes, created_at, updated_at
FROM savings_accounts
ORDER BY code
LIMIT $1 OFFSET $2
`

// List lists savings accounts with pagination.
func (r *SavingsAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.SavingsAccount, error) {
	rows, err := r.pool.Query(ctx, listSavingsSQL, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.SavingsAccount

	for rows.Next() {
		account, err := scanSavingsAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

const updateSavingsSQL = `
UPDATE savings_accounts
SET code = $2, name = $3, account_type = $4, bank_name = $5, account_number = $6, status = $7, notes = $8, updated_at = $9
WHERE id = $1
`

// Update replaces a savings account's mutable fields.
func (r *SavingsAccountRepository) Update(ctx context.Context, account *domain.SavingsAccount) error {
	tag, err := r.pool.Exec(ctx, updateSavingsSQL,
		account.ID,
		account.Code,
		account.Name,
		account.AccountType,
		account.BankName,
		account.AccountNumber,
		string(account.Status),
		account.Notes,
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSavingsAccountNotFound
	}

	return nil
}

const deleteSavingsSQL = `DELETE FROM savings_accounts WHERE id = $1`

// Delete deletes a savings account by ID.
func (r *SavingsAccountRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteSavingsSQL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSavingsAccountNotFound
	}

	return nil
}

func scanSavingsAccount(row pgx.Row) (*domain.SavingsAccount, error) {
	var (
		account domain.SavingsAccount
		status  string
	)

	err := row.Scan(
		&account.ID,
		&account.Code,
		&account.Name,
		&account.AccountType,
		&account.BankName,
		&account.AccountNumber,
		&status,
		&account.Notes,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Status = domain.AccountStatus(status)

	return &account, nil
}
