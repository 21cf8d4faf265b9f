package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// ReconciliationUseCase compares stored balance entries against the balance
// implied by the transaction log. Because the transfer workflow and the
// balance sync deliberately tolerate uncompensated balance failures, the two
// can diverge; this use case surfaces that drift.
type ReconciliationUseCase struct {
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(balanceRepo BalanceRepository, transactionRepo TransactionRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

// DriftResult is the reconciliation outcome for one account.
type DriftResult struct {
	Account       domain.AccountRef
	StoredBalance decimal.Decimal
	LedgerBalance decimal.Decimal
	Drift         decimal.Decimal
	InSync        bool
	CheckedAt     time.Time
}

// CheckAccount reconciles one account's stored balance against its postings.
func (uc *ReconciliationUseCase) CheckAccount(ctx context.Context, account domain.AccountRef) (*DriftResult, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	entry, err := uc.balanceRepo.Get(ctx, account)
	if err != nil {
		return nil, err
	}

	implied, err := uc.transactionRepo.SumSigned(ctx, account)
	if err != nil {
		return nil, err
	}

	drift := entry.CurrentBalance.Sub(implied)

	return &DriftResult{
		Account:       account,
		StoredBalance: entry.CurrentBalance,
		LedgerBalance: implied,
		Drift:         drift,
		InSync:        drift.IsZero(),
		CheckedAt:     time.Now().UTC(),
	}, nil
}

// DriftReport is a reconciliation sweep over every balance entry.
type DriftReport struct {
	TotalAccounts   int
	DriftedAccounts int
	Results         []*DriftResult
	CheckedAt       time.Time
}

// CheckAll reconciles every account that has a balance entry.
func (uc *ReconciliationUseCase) CheckAll(ctx context.Context) (*DriftReport, error) {
	entries, err := uc.balanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &DriftReport{
		TotalAccounts: len(entries),
		Results:       make([]*DriftResult, 0, len(entries)),
		CheckedAt:     time.Now().UTC(),
	}

	for _, entry := range entries {
		result, err := uc.CheckAccount(ctx, entry.Account)
		if err != nil {
			return nil, err
		}

		if !result.InSync {
			report.DriftedAccounts++
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}
