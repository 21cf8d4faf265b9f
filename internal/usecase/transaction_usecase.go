package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/metrics"
)

// TransactionUseCase handles simple income/expense postings and the
// best-effort balance sync that follows them.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	balanceRepo     BalanceRepository
	accounts        *accountDirectory
	idGen           IDGenerator
	logger          zerolog.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	transactionRepo TransactionRepository,
	balanceRepo BalanceRepository,
	storeRepo StoreRepository,
	savingsRepo SavingsAccountRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		accounts:        &accountDirectory{stores: storeRepo, savings: savingsRepo},
		idGen:           idGen,
		logger:          logger,
	}
}

// PostTransactionInput represents input for posting a transaction.
type PostTransactionInput struct {
	Account         domain.AccountRef
	Kind            domain.TransactionKind
	Category        string
	Amount          decimal.Decimal
	PaymentMethod   string
	Notes           string
	TransactionDate *time.Time
	StaffEmail      string
}

// PostTransaction inserts one posting into the transaction log, then syncs
// the account's balance entry. The posting is authoritative: a failed sync
// leaves the stored balance drifted but never fails the call.
func (uc *TransactionUseCase) PostTransaction(ctx context.Context, input PostTransactionInput) (*domain.TransactionRecord, error) {
	now := time.Now().UTC()

	transactionDate := domain.TruncateToDate(now)
	if input.TransactionDate != nil {
		transactionDate = domain.TruncateToDate(*input.TransactionDate)
	}

	record := &domain.TransactionRecord{
		ID:              uc.idGen.Generate(),
		Account:         input.Account,
		Kind:            input.Kind,
		Category:        input.Category,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
		TransactionDate: transactionDate,
		StaffEmail:      input.StaffEmail,
		CreatedAt:       now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := uc.accounts.requireActive(ctx, input.Account); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	metrics.TransactionsPosted.WithLabelValues(string(record.Kind)).Inc()

	// Best-effort balance sync. ApplyDelta lazily creates the entry with
	// the signed amount when the account has none yet.
	if _, err := uc.balanceRepo.ApplyDelta(ctx, record.Account, record.SignedAmount(), now); err != nil {
		metrics.BalanceDrift.WithLabelValues("transaction").Inc()

		uc.logger.Warn().
			Err(err).
			Str("transaction_id", record.ID).
			Str("account_kind", string(record.Account.Kind)).
			Str("account_id", record.Account.ID).
			Str("delta", record.SignedAmount().String()).
			Msg("balance sync failed after posting commit, stored balance has drifted")
	}

	return record, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Account *domain.AccountRef
	Date    *time.Time
	Limit   int
	Offset  int
}

// ListTransactions lists postings, newest first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.TransactionRecord, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.transactionRepo.List(ctx, TransactionFilter{
		Account: input.Account,
		Date:    input.Date,
		Limit:   limit,
		Offset:  offset,
	})
}
