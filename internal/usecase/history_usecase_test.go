package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
	"github.com/Ashish092/Rollin-Pos/internal/usecase/mocks"
)

func seedPosting(repo *mocks.MockTransactionRepository, account domain.AccountRef, kind domain.TransactionKind, amount string, date time.Time) {
	repo.Put(&domain.TransactionRecord{
		ID:              "tx-" + string(kind) + "-" + amount,
		Account:         account,
		Kind:            kind,
		Category:        "test",
		Amount:          decimal.RequireFromString(amount),
		PaymentMethod:   "cash",
		TransactionDate: date,
		CreatedAt:       date,
	})
}

func TestHistoryUseCase_ComputeSnapshot_FirstDay(t *testing.T) {
	historyRepo := mocks.NewMockHistoryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewHistoryUseCase(historyRepo, transactionRepo)

	account := domain.StoreRef("store-1")
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seedPosting(transactionRepo, account, domain.KindIncome, "500", day)
	seedPosting(transactionRepo, account, domain.KindExpense, "120", day)
	seedPosting(transactionRepo, account, domain.KindTransfer, "50", day)

	record, err := uc.ComputeSnapshot(context.Background(), account, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// no prior snapshot: opening 0, closing 0 + 500 - 120 - 50 = 330
	if !record.OpeningBalance.IsZero() {
		t.Errorf("opening = %s, want 0", record.OpeningBalance)
	}
	if want := decimal.NewFromInt(330); !record.ClosingBalance.Equal(want) {
		t.Errorf("closing = %s, want %s", record.ClosingBalance, want)
	}
	if want := decimal.NewFromInt(500); !record.TotalIncome.Equal(want) {
		t.Errorf("income = %s, want %s", record.TotalIncome, want)
	}
	if want := decimal.NewFromInt(120); !record.TotalExpense.Equal(want) {
		t.Errorf("expense = %s, want %s", record.TotalExpense, want)
	}
	if want := decimal.NewFromInt(50); !record.TotalTransfer.Equal(want) {
		t.Errorf("transfer = %s, want %s", record.TotalTransfer, want)
	}
	if want := decimal.NewFromInt(330); !record.NetChange.Equal(want) {
		t.Errorf("net change = %s, want %s", record.NetChange, want)
	}
}

func TestHistoryUseCase_ComputeSnapshot_CarriesPriorClosing(t *testing.T) {
	historyRepo := mocks.NewMockHistoryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewHistoryUseCase(historyRepo, transactionRepo)

	account := domain.StoreRef("store-1")
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	seedPosting(transactionRepo, account, domain.KindIncome, "100", day1)
	seedPosting(transactionRepo, account, domain.KindIncome, "40", day2)

	if _, err := uc.ComputeSnapshot(context.Background(), account, day1); err != nil {
		t.Fatalf("day 1 snapshot: %v", err)
	}

	record, err := uc.ComputeSnapshot(context.Background(), account, day2)
	if err != nil {
		t.Fatalf("day 2 snapshot: %v", err)
	}

	if want := decimal.NewFromInt(100); !record.OpeningBalance.Equal(want) {
		t.Errorf("day 2 opening = %s, want %s", record.OpeningBalance, want)
	}
	if want := decimal.NewFromInt(140); !record.ClosingBalance.Equal(want) {
		t.Errorf("day 2 closing = %s, want %s", record.ClosingBalance, want)
	}
}

func TestHistoryUseCase_ComputeSnapshot_Idempotent(t *testing.T) {
	historyRepo := mocks.NewMockHistoryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewHistoryUseCase(historyRepo, transactionRepo)

	account := domain.SavingsRef("sav-1")
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seedPosting(transactionRepo, account, domain.KindIncome, "75", day)

	first, err := uc.ComputeSnapshot(context.Background(), account, day)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	// a late posting arrives, recompute picks up the full day again
	seedPosting(transactionRepo, account, domain.KindExpense, "25", day)

	second, err := uc.ComputeSnapshot(context.Background(), account, day)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if want := decimal.NewFromInt(75); !first.ClosingBalance.Equal(want) {
		t.Errorf("first closing = %s, want %s", first.ClosingBalance, want)
	}
	if want := decimal.NewFromInt(50); !second.ClosingBalance.Equal(want) {
		t.Errorf("recomputed closing = %s, want %s", second.ClosingBalance, want)
	}

	records, err := uc.ListHistory(context.Background(), usecase.ListHistoryInput{Account: &account})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("recompute must upsert, found %d records for the same day", len(records))
	}
}

func TestHistoryUseCase_ComputeSnapshot_NoCascade(t *testing.T) {
	historyRepo := mocks.NewMockHistoryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewHistoryUseCase(historyRepo, transactionRepo)

	account := domain.StoreRef("store-1")
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	seedPosting(transactionRepo, account, domain.KindIncome, "100", day1)

	if _, err := uc.ComputeSnapshot(context.Background(), account, day1); err != nil {
		t.Fatalf("day 1 snapshot: %v", err)
	}
	day2Record, err := uc.ComputeSnapshot(context.Background(), account, day2)
	if err != nil {
		t.Fatalf("day 2 snapshot: %v", err)
	}

	// backdated posting changes day 1, day 2 keeps its stale opening until
	// recomputed itself
	seedPosting(transactionRepo, account, domain.KindIncome, "900", day1)
	if _, err := uc.ComputeSnapshot(context.Background(), account, day1); err != nil {
		t.Fatalf("day 1 recompute: %v", err)
	}

	stored, err := historyRepo.GetByAccountDate(context.Background(), account, day2)
	if err != nil {
		t.Fatalf("day 2 record: %v", err)
	}
	if !stored.OpeningBalance.Equal(day2Record.OpeningBalance) {
		t.Errorf("day 2 opening changed to %s without a recompute", stored.OpeningBalance)
	}
}

func TestHistoryUseCase_ComputeSnapshot_TruncatesDate(t *testing.T) {
	historyRepo := mocks.NewMockHistoryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewHistoryUseCase(historyRepo, transactionRepo)

	account := domain.StoreRef("store-1")
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seedPosting(transactionRepo, account, domain.KindIncome, "10", day)

	record, err := uc.ComputeSnapshot(context.Background(), account, day.Add(17*time.Hour+30*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !record.Date.Equal(day) {
		t.Errorf("snapshot date = %v, want %v", record.Date, day)
	}
	if want := decimal.NewFromInt(10); !record.TotalIncome.Equal(want) {
		t.Errorf("income = %s, want %s", record.TotalIncome, want)
	}
}

func TestHistoryUseCase_ComputeSnapshot_InvalidAccount(t *testing.T) {
	uc := usecase.NewHistoryUseCase(mocks.NewMockHistoryRepository(), mocks.NewMockTransactionRepository())

	_, err := uc.ComputeSnapshot(context.Background(), domain.AccountRef{Kind: "wallet", ID: "w-1"}, time.Now())
	if err == nil {
		t.Fatal("expected error for invalid account kind")
	}
}
