package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// StoreRepository defines data access for stores.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id string) error
}

// SavingsAccountRepository defines data access for savings accounts.
type SavingsAccountRepository interface {
	Create(ctx context.Context, account *domain.SavingsAccount) error
	GetByID(ctx context.Context, id string) (*domain.SavingsAccount, error)
	List(ctx context.Context, limit, offset int) ([]*domain.SavingsAccount, error)
	Update(ctx context.Context, account *domain.SavingsAccount) error
	Delete(ctx context.Context, id string) error
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Account *domain.AccountRef
	Date    *time.Time
	Limit   int
	Offset  int
}

// TransactionRepository defines data access for the transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, record *domain.TransactionRecord) error
	// Delete exists solely for the compensating delete in the transfer
	// workflow; postings are otherwise immutable.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TransactionRecord, error)
	List(ctx context.Context, filter TransactionFilter) ([]*domain.TransactionRecord, error)
	// SumByDate returns one day's totals grouped by kind for one account.
	SumByDate(ctx context.Context, account domain.AccountRef, date time.Time) (domain.DailyTotals, error)
	// SumSigned returns the ledger-implied balance of an account: the sum of
	// all its postings with the sign convention applied.
	SumSigned(ctx context.Context, account domain.AccountRef) (decimal.Decimal, error)
}

// TransferRepository defines data access for transfer records.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.TransferRecord) error
	GetByID(ctx context.Context, id string) (*domain.TransferRecord, error)
	List(ctx context.Context, limit, offset int) ([]*domain.TransferRecord, error)
}

// BalanceRepository defines data access for the balance ledger.
type BalanceRepository interface {
	Get(ctx context.Context, account domain.AccountRef) (*domain.BalanceEntry, error)
	List(ctx context.Context) ([]*domain.BalanceEntry, error)
	// ApplyDelta atomically adds delta to the account's balance, creating the
	// entry with current_balance = delta when none exists.
	ApplyDelta(ctx context.Context, account domain.AccountRef, delta decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error)
	// SetAbsolute overwrites the account's balance with value.
	SetAbsolute(ctx context.Context, account domain.AccountRef, value decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error)
}

// HistoryFilter narrows daily history listings.
type HistoryFilter struct {
	Account *domain.AccountRef
	Date    *time.Time
	Limit   int
	Offset  int
}

// HistoryRepository defines data access for daily snapshots.
type HistoryRepository interface {
	// Upsert writes the record keyed by (account, date), replacing any prior row.
	Upsert(ctx context.Context, record *domain.DailyHistoryRecord) error
	GetByAccountDate(ctx context.Context, account domain.AccountRef, date time.Time) (*domain.DailyHistoryRecord, error)
	List(ctx context.Context, filter HistoryFilter) ([]*domain.DailyHistoryRecord, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
