package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/metrics"
)

// TransferUseCase orchestrates fund movements between accounts.
//
// A transfer is a chain of dependent writes against the persistence layer:
// two transaction-log legs, one transfer record, then two balance updates.
// There is no database transaction spanning the chain; instead each step
// compensates the earlier ones on failure, except the final balance step,
// which is allowed to drift (logged and counted, never surfaced).
type TransferUseCase struct {
	transactionRepo TransactionRepository
	transferRepo    TransferRepository
	balanceRepo     BalanceRepository
	accounts        *accountDirectory
	idGen           IDGenerator
	logger          zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	transactionRepo TransactionRepository,
	transferRepo TransferRepository,
	balanceRepo BalanceRepository,
	storeRepo StoreRepository,
	savingsRepo SavingsAccountRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		transactionRepo: transactionRepo,
		transferRepo:    transferRepo,
		balanceRepo:     balanceRepo,
		accounts:        &accountDirectory{stores: storeRepo, savings: savingsRepo},
		idGen:           idGen,
		logger:          logger,
	}
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	From       domain.AccountRef
	To         domain.AccountRef
	Amount     decimal.Decimal
	Notes      string
	StaffEmail string
}

// TransferResult is the full outcome of a completed transfer.
type TransferResult struct {
	Reference string
	Outgoing  *domain.TransactionRecord
	Incoming  *domain.TransactionRecord
	Record    *domain.TransferRecord
}

// CreateTransfer runs the transfer workflow:
//
//  1. generate reference and transaction date
//  2. post the outgoing leg (expense/transfer_out on the from account)
//  3. post the incoming leg (income/transfer_in on the to account);
//     on failure delete the outgoing leg
//  4. create the transfer record linking both legs;
//     on failure delete both legs
//  5. apply both balance deltas; failures here are logged and counted
//     but the transfer still succeeds
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	if err := uc.accounts.requireActive(ctx, input.From); err != nil {
		return nil, err
	}

	if err := uc.accounts.requireActive(ctx, input.To); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reference := uc.newReference(now)
	transactionDate := domain.TruncateToDate(now)

	// Step 2: outgoing leg. Nothing to compensate on failure.
	outgoing := &domain.TransactionRecord{
		ID:              uc.idGen.Generate(),
		Account:         input.From,
		Kind:            domain.KindExpense,
		Category:        domain.CategoryTransferOut,
		Amount:          input.Amount,
		PaymentMethod:   "transfer",
		Notes:           fmt.Sprintf("Transfer out to %s: %s", accountLabel(input.To.Kind), input.Notes),
		TransactionDate: transactionDate,
		StaffEmail:      input.StaffEmail,
		CreatedAt:       now,
	}

	if err := uc.transactionRepo.Create(ctx, outgoing); err != nil {
		return nil, fmt.Errorf("failed to create outgoing transaction: %w", err)
	}

	// Step 3: incoming leg. Compensate by deleting the outgoing leg.
	incoming := &domain.TransactionRecord{
		ID:              uc.idGen.Generate(),
		Account:         input.To,
		Kind:            domain.KindIncome,
		Category:        domain.CategoryTransferIn,
		Amount:          input.Amount,
		PaymentMethod:   "transfer",
		Notes:           fmt.Sprintf("Transfer in from %s: %s", accountLabel(input.From.Kind), input.Notes),
		TransactionDate: transactionDate,
		StaffEmail:      input.StaffEmail,
		CreatedAt:       now,
	}

	if err := uc.transactionRepo.Create(ctx, incoming); err != nil {
		uc.compensate(ctx, reference, "incoming_failed", outgoing)
		return nil, fmt.Errorf("failed to create incoming transaction: %w", err)
	}

	// Step 4: transfer record. Compensate by deleting both legs.
	record := &domain.TransferRecord{
		ID:                    uc.idGen.Generate(),
		Reference:             reference,
		From:                  input.From,
		To:                    input.To,
		Amount:                input.Amount,
		Notes:                 input.Notes,
		TransactionDate:       transactionDate,
		StaffEmail:            input.StaffEmail,
		OutgoingTransactionID: outgoing.ID,
		IncomingTransactionID: incoming.ID,
		CreatedAt:             now,
	}

	if err := uc.transferRepo.Create(ctx, record); err != nil {
		uc.compensate(ctx, reference, "record_failed", outgoing, incoming)
		return nil, fmt.Errorf("failed to create transfer record: %w", err)
	}

	// Step 5: balance updates. Both legs and the record are committed at
	// this point, so failures are not rolled back; the stored balances may
	// drift from the transaction log until manually reconciled.
	if _, err := uc.balanceRepo.ApplyDelta(ctx, input.From, input.Amount.Neg(), now); err != nil {
		uc.recordDrift(reference, input.From, input.Amount.Neg(), err)
	}

	if _, err := uc.balanceRepo.ApplyDelta(ctx, input.To, input.Amount, now); err != nil {
		uc.recordDrift(reference, input.To, input.Amount, err)
	}

	metrics.TransfersCreated.Inc()

	uc.logger.Info().
		Str("reference", reference).
		Str("from", string(input.From.Kind)+":"+input.From.ID).
		Str("to", string(input.To.Kind)+":"+input.To.ID).
		Str("amount", input.Amount.String()).
		Msg("transfer completed")

	return &TransferResult{
		Reference: reference,
		Outgoing:  outgoing,
		Incoming:  incoming,
		Record:    record,
	}, nil
}

// GetTransfer retrieves a transfer record by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.TransferRecord, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// ListTransfersInput represents input for listing transfers.
type ListTransfersInput struct {
	Limit  int
	Offset int
}

// ListTransfers lists transfer records, newest first.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, input ListTransfersInput) ([]*domain.TransferRecord, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.transferRepo.List(ctx, limit, offset)
}

func (uc *TransferUseCase) validate(input CreateTransferInput) error {
	if err := input.From.Validate(); err != nil {
		return err
	}

	if err := input.To.Validate(); err != nil {
		return err
	}

	if input.From.Equal(input.To) {
		return domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	return domain.ValidateEmail(input.StaffEmail)
}

// compensate deletes already-committed legs after a later step failed.
// A failed delete is only logged: the leg is orphaned and needs manual
// cleanup, exactly like drifted balances.
func (uc *TransferUseCase) compensate(ctx context.Context, reference, step string, legs ...*domain.TransactionRecord) {
	metrics.TransferCompensations.WithLabelValues(step).Inc()

	for _, leg := range legs {
		if err := uc.transactionRepo.Delete(ctx, leg.ID); err != nil {
			uc.logger.Error().
				Err(err).
				Str("reference", reference).
				Str("transaction_id", leg.ID).
				Str("step", step).
				Msg("compensating delete failed, orphaned transaction leg")
		}
	}
}

func (uc *TransferUseCase) recordDrift(reference string, account domain.AccountRef, delta decimal.Decimal, err error) {
	metrics.BalanceDrift.WithLabelValues("transfer").Inc()

	uc.logger.Warn().
		Err(err).
		Str("reference", reference).
		Str("account_kind", string(account.Kind)).
		Str("account_id", account.ID).
		Str("delta", delta.String()).
		Msg("balance update failed after transfer commit, stored balance has drifted")
}

// newReference builds the unique transfer reference, millisecond timestamp
// plus a random suffix.
func (uc *TransferUseCase) newReference(now time.Time) string {
	suffix := strings.ToLower(uc.idGen.Generate())
	if len(suffix) > 9 {
		suffix = suffix[len(suffix)-9:]
	}

	return fmt.Sprintf("TRF-%d-%s", now.UnixMilli(), suffix)
}

func accountLabel(kind domain.AccountKind) string {
	if kind == domain.KindStore {
		return "Store"
	}

	return "Savings Account"
}

// accountDirectory resolves typed account references against the two
// registries and enforces the active-status precondition.
type accountDirectory struct {
	stores  StoreRepository
	savings SavingsAccountRepository
}

func (d *accountDirectory) requireActive(ctx context.Context, ref domain.AccountRef) error {
	switch ref.Kind {
	case domain.KindStore:
		store, err := d.stores.GetByID(ctx, ref.ID)
		if err != nil {
			return err
		}

		if !store.CanTransact() {
			return domain.ErrAccountInactive
		}
	case domain.KindSavings:
		account, err := d.savings.GetByID(ctx, ref.ID)
		if err != nil {
			return err
		}

		if !account.CanTransact() {
			return domain.ErrAccountInactive
		}
	default:
		return domain.ErrInvalidAccountKind
	}

	return nil
}
