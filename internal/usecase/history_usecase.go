package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/infrastructure/metrics"
)

// HistoryUseCase derives daily cash snapshots from the transaction log.
type HistoryUseCase struct {
	historyRepo     HistoryRepository
	transactionRepo TransactionRepository
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(historyRepo HistoryRepository, transactionRepo TransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{
		historyRepo:     historyRepo,
		transactionRepo: transactionRepo,
	}
}

// ComputeSnapshot recomputes one account's snapshot for one calendar date
// and upserts it. The opening balance is the previous day's stored closing
// balance, or zero when that day has no record. Re-running is idempotent:
// totals always come from the full day's transaction set. A later recompute
// of the previous day does not cascade into this one.
func (uc *HistoryUseCase) ComputeSnapshot(ctx context.Context, account domain.AccountRef, date time.Time) (*domain.DailyHistoryRecord, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	date = domain.TruncateToDate(date)

	opening := decimal.Zero

	previous, err := uc.historyRepo.GetByAccountDate(ctx, account, date.AddDate(0, 0, -1))
	switch {
	case err == nil:
		opening = previous.ClosingBalance
	case errors.Is(err, domain.ErrHistoryNotFound):
		// first snapshot for this account
	default:
		return nil, err
	}

	totals, err := uc.transactionRepo.SumByDate(ctx, account, date)
	if err != nil {
		return nil, err
	}

	record := domain.NewDailyHistoryRecord(account, date, opening, totals, time.Now().UTC())

	if err := uc.historyRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	metrics.SnapshotsComputed.Inc()

	return record, nil
}

// ListHistoryInput represents input for listing snapshots.
type ListHistoryInput struct {
	Account *domain.AccountRef
	Date    *time.Time
	Limit   int
	Offset  int
}

// ListHistory lists snapshot records, newest date first.
func (uc *HistoryUseCase) ListHistory(ctx context.Context, input ListHistoryInput) ([]*domain.DailyHistoryRecord, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	var date *time.Time
	if input.Date != nil {
		d := domain.TruncateToDate(*input.Date)
		date = &d
	}

	return uc.historyRepo.List(ctx, HistoryFilter{
		Account: input.Account,
		Date:    date,
		Limit:   limit,
		Offset:  offset,
	})
}
