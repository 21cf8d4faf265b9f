package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// UserRepository implements usecase.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const createUserSQL = `
INSERT INTO users (id, email, name, password_hash, role, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Create creates a new user.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, createUserSQL,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		string(user.Role),
		user.Active,
		timeToPgTimestamptz(user.CreatedAt),
		timeToPgTimestamptz(user.UpdatedAt),
	)

	return err
}

const getUserByIDSQL = `
SELECT id, email, name, password_hash, role, active, created_at, updated_at
FROM users
WHERE id = $1
`

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getUser(ctx, getUserByIDSQL, id)
}

const getUserByEmailSQL = `
SELECT id, email, name, password_hash, role, active, created_at, updated_at
FROM users
WHERE email = $1
`

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, getUserByEmailSQL, email)
}

func (r *UserRepository) getUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var (
		user domain.User
		role string
	)

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&role,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}

		return nil, err
	}

	user.Role = domain.Role(role)

	return &user, nil
}
