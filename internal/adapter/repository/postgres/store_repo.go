package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// StoreRepository implements usecase.StoreRepository.
type StoreRepository struct {
	pool *pgxpool.Pool
}

// NewStoreRepository creates a new StoreRepository.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

const createStoreSQL = `
INSERT INTO stores (id, code, branch, address, phone, email, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Create creates a new store.
func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	_, err := r.pool.Exec(ctx, createStoreSQL,
		store.ID,
		store.Code,
		store.Branch,
		store.Address,
		store.Phone,
		store.Email,
		string(store.Status),
		timeToPgTimestamptz(store.CreatedAt),
		timeToPgTimestamptz(store.UpdatedAt),
	)

	return err
}

const getStoreSQL = `
SELECT id, code, branch, address, phone, email, status, created_at, updated_at
FROM stores
WHERE id = $1
`

// GetByID retrieves a store by ID.
func (r *StoreRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	store, err := scanStore(r.pool.QueryRow(ctx, getStoreSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}

		return nil, err
	}

	return store, nil
}

const listStoresSQL = `
SELECT id, code, branch, address, phone, email, status, created_at, updated_at
FROM stores
ORDER BY code
LIMIT $1 OFFSET $2
`

// List lists stores with pagination.
func (r *StoreRepository) List(ctx context.Context, limit, offset int) ([]*domain.Store, error) {
	rows, err := r.pool.Query(ctx, listStoresSQL, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*domain.Store

	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}

		stores = append(stores, store)
	}

	return stores, rows.Err()
}

const updateStoreSQL = `
UPDATE stores
SET code = $2, branch = $3, address = $4, phone = $5, email = $6, status = $7, updated_at = $8
WHERE id = $1
`

// Update replaces a store's mutable fields.
func (r *StoreRepository) Update(ctx context.Context, store *domain.Store) error {
	tag, err := r.pool.Exec(ctx, updateStoreSQL,
		store.ID,
		store.Code,
		store.Branch,
		store.Address,
		store.Phone,
		store.Email,
		string(store.Status),
		timeToPgTimestamptz(store.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrStoreNotFound
	}

	return nil
}

const deleteStoreSQL = `DELETE FROM stores WHERE id = $1`

// Delete deletes a store by ID.
func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteStoreSQL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrStoreNotFound
	}

	return nil
}

func scanStore(row pgx.Row) (*domain.Store, error) {
	var (
		store  domain.Store
		status string
	)

	err := row.Scan(
		&store.ID,
		&store.Code,
		&store.Branch,
		&store.Address,
		&store.Phone,
		&store.Email,
		&status,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	store.Status = domain.AccountStatus(status)

	return &store, nil
}
