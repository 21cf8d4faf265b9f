package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
	"github.com/Ashish092/Rollin-Pos/internal/usecase/mocks"
)

type transactionFixture struct {
	transactionRepo *mocks.MockTransactionRepository
	balanceRepo     *mocks.MockBalanceRepository
	storeRepo       *mocks.MockStoreRepository
	savingsRepo     *mocks.MockSavingsAccountRepository
	uc              *usecase.TransactionUseCase
}

func newTransactionFixture() *transactionFixture {
	f := &transactionFixture{
		transactionRepo: mocks.NewMockTransactionRepository(),
		balanceRepo:     mocks.NewMockBalanceRepository(),
		storeRepo:       mocks.NewMockStoreRepository(),
		savingsRepo:     mocks.NewMockSavingsAccountRepository(),
	}

	f.storeRepo.Add(&domain.Store{ID: "store-1", Code: "ST-1", Branch: "Main", Address: "addr", Status: domain.StatusActive})
	f.storeRepo.Add(&domain.Store{ID: "store-2", Code: "ST-2", Branch: "East", Address: "addr", Status: domain.StatusInactive})

	f.uc = usecase.NewTransactionUseCase(
		f.transactionRepo,
		f.balanceRepo,
		f.storeRepo,
		f.savingsRepo,
		mocks.NewMockIDGenerator(),
		zerolog.Nop(),
	)

	return f
}

func incomeInput(amount string) usecase.PostTransactionInput {
	return usecase.PostTransactionInput{
		Account:       domain.StoreRef("store-1"),
		Kind:          domain.KindIncome,
		Category:      "sales",
		Amount:        decimal.RequireFromString(amount),
		PaymentMethod: "cash",
		StaffEmail:    "staff@example.com",
	}
}

func TestTransactionUseCase_PostTransaction_CreatesBalanceLazily(t *testing.T) {
	f := newTransactionFixture()

	// no balance entry exists for store-1 yet
	record, err := f.uc.PostTransaction(context.Background(), incomeInput("200.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, err := f.balanceRepo.Get(context.Background(), domain.StoreRef("store-1"))
	if err != nil {
		t.Fatalf("balance entry not created: %v", err)
	}
	if want := decimal.RequireFromString("200.00"); !entry.CurrentBalance.Equal(want) {
		t.Errorf("balance = %s, want %s", entry.CurrentBalance, want)
	}

	if record.TransactionDate.IsZero() {
		t.Error("transaction date must default to today")
	}
	if h, m, s := record.TransactionDate.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("transaction date not truncated to midnight: %v", record.TransactionDate)
	}
}

func TestTransactionUseCase_PostTransaction_ExpenseSubtracts(t *testing.T) {
	f := newTransactionFixture()
	f.balanceRepo.Seed(domain.StoreRef("store-1"), decimal.NewFromInt(100))

	input := incomeInput("40")
	input.Kind = domain.KindExpense
	input.Category = "supplies"

	if _, err := f.uc.PostTransaction(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, _ := f.balanceRepo.Get(context.Background(), domain.StoreRef("store-1"))
	if want := decimal.NewFromInt(60); !entry.CurrentBalance.Equal(want) {
		t.Errorf("balance = %s, want %s", entry.CurrentBalance, want)
	}
}

func TestTransactionUseCase_PostTransaction_BalanceSyncFailureNonFatal(t *testing.T) {
	f := newTransactionFixture()
	f.balanceRepo.ApplyDeltaFunc = func(ctx context.Context, account domain.AccountRef, delta decimal.Decimal, updatedAt time.Time) (*domain.BalanceEntry, error) {
		return nil, errors.New("balance write rejected")
	}

	record, err := f.uc.PostTransaction(context.Background(), incomeInput("25.50"))
	if err != nil {
		t.Fatalf("posting must survive a failed balance sync, got %v", err)
	}

	if _, err := f.transactionRepo.GetByID(context.Background(), record.ID); err != nil {
		t.Errorf("posting missing after balance failure: %v", err)
	}
}

func TestTransactionUseCase_PostTransaction_Errors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*usecase.PostTransactionInput)
		expectError error
	}{
		{
			name:        "zero amount",
			mutate:      func(in *usecase.PostTransactionInput) { in.Amount = decimal.Zero },
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "unknown kind",
			mutate: func(in *usecase.PostTransactionInput) {
				in.Kind = domain.TransactionKind("refund")
			},
			expectError: domain.ErrInvalidTransactionKind,
		},
		{
			name:        "missing category",
			mutate:      func(in *usecase.PostTransactionInput) { in.Category = "" },
			expectError: domain.ErrMissingCategory,
		},
		{
			name:        "missing payment method",
			mutate:      func(in *usecase.PostTransactionInput) { in.PaymentMethod = "" },
			expectError: domain.ErrMissingPaymentMethod,
		},
		{
			name:        "inactive store",
			mutate:      func(in *usecase.PostTransactionInput) { in.Account = domain.StoreRef("store-2") },
			expectError: domain.ErrAccountInactive,
		},
		{
			name:        "unknown store",
			mutate:      func(in *usecase.PostTransactionInput) { in.Account = domain.StoreRef("missing") },
			expectError: domain.ErrStoreNotFound,
		},
		{
			name:        "unknown savings account",
			mutate:      func(in *usecase.PostTransactionInput) { in.Account = domain.SavingsRef("missing") },
			expectError: domain.ErrSavingsAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransactionFixture()

			input := incomeInput("10")
			tt.mutate(&input)

			_, err := f.uc.PostTransaction(context.Background(), input)
			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}

			if got := len(f.transactionRepo.All()); got != 0 {
				t.Errorf("rejected posting must not be stored, found %d", got)
			}
		})
	}
}

func TestTransactionUseCase_PostTransaction_ExplicitDate(t *testing.T) {
	f := newTransactionFixture()

	date := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	input := incomeInput("10")
	input.TransactionDate = &date

	record, err := f.uc.PostTransaction(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !record.TransactionDate.Equal(want) {
		t.Errorf("transaction date = %v, want %v", record.TransactionDate, want)
	}
}

func TestTransactionUseCase_ListTransactions_FiltersByAccount(t *testing.T) {
	f := newTransactionFixture()

	if _, err := f.uc.PostTransaction(context.Background(), incomeInput("10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.storeRepo.Add(&domain.Store{ID: "store-3", Code: "ST-3", Branch: "West", Address: "addr", Status: domain.StatusActive})
	other := incomeInput("20")
	other.Account = domain.StoreRef("store-3")
	if _, err := f.uc.PostTransaction(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	account := domain.StoreRef("store-1")
	records, err := f.uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{Account: &account})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record for store-1, got %d", len(records))
	}
	if !records[0].Account.Equal(account) {
		t.Errorf("listed record belongs to %v", records[0].Account)
	}
}
