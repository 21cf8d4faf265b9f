package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// BalanceUseCase exposes the balance ledger: one current-balance entry per
// account, mutated by deltas or overwritten by manual adjustments.
type BalanceUseCase struct {
	balanceRepo BalanceRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(balanceRepo BalanceRepository) *BalanceUseCase {
	return &BalanceUseCase{balanceRepo: balanceRepo}
}

// GetBalance retrieves an account's balance entry.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, account domain.AccountRef) (*domain.BalanceEntry, error) {
	return uc.balanceRepo.Get(ctx, account)
}

// ListBalances lists all balance entries.
func (uc *BalanceUseCase) ListBalances(ctx context.Context) ([]*domain.BalanceEntry, error) {
	return uc.balanceRepo.List(ctx)
}

// AdjustmentKind selects how a manual adjustment is applied.
const (
	AdjustIncome   = "income"
	AdjustExpense  = "expense"
	AdjustTransfer = "transfer"
	AdjustAbsolute = "adjustment"
)

// AdjustBalanceInput represents a manual balance adjustment.
type AdjustBalanceInput struct {
	Account domain.AccountRef
	Amount  decimal.Decimal
	Kind    string
}

// AdjustBalance applies a manual adjustment to an account's entry. Income
// adds, expense and transfer subtract, and "adjustment" sets the absolute
// value. The account's existence is the caller's responsibility; an absent
// entry is created with the signed amount.
func (uc *BalanceUseCase) AdjustBalance(ctx context.Context, input AdjustBalanceInput) (*domain.BalanceEntry, error) {
	if err := input.Account.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	switch input.Kind {
	case AdjustIncome:
		return uc.balanceRepo.ApplyDelta(ctx, input.Account, input.Amount, now)
	case AdjustExpense, AdjustTransfer:
		return uc.balanceRepo.ApplyDelta(ctx, input.Account, input.Amount.Neg(), now)
	case AdjustAbsolute:
		return uc.balanceRepo.SetAbsolute(ctx, input.Account, input.Amount, now)
	default:
		return nil, domain.ErrInvalidTransactionKind
	}
}
