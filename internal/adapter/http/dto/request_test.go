package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

func TestPostTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := PostTransactionRequest{
		AccountRefRequest: AccountRefRequest{AccountKind: "store", AccountID: "store-1"},
		Kind:              "income",
		Category:          "sales",
		Amount:            decimal.NewFromInt(200),
		PaymentMethod:     "cash",
		TransactionDate:   "2025-03-14",
		StaffEmail:        "staff@example.com",
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Account != domain.StoreRef("store-1") {
		t.Fatalf("unexpected account ref: %+v", input.Account)
	}

	if input.Kind != domain.KindIncome {
		t.Fatalf("unexpected kind: %s", input.Kind)
	}

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if input.TransactionDate == nil || !input.TransactionDate.Equal(want) {
		t.Fatalf("unexpected transaction date: %v", input.TransactionDate)
	}
}

func TestPostTransactionRequest_OmittedDate(t *testing.T) {
	req := PostTransactionRequest{
		AccountRefRequest: AccountRefRequest{AccountKind: "savings", AccountID: "sav-1"},
		Kind:              "expense",
		Category:          "supplies",
		Amount:            decimal.NewFromInt(40),
		PaymentMethod:     "card",
		StaffEmail:        "staff@example.com",
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.TransactionDate != nil {
		t.Fatalf("expected nil transaction date, got %v", input.TransactionDate)
	}
}

func TestPostTransactionRequest_InvalidDate(t *testing.T) {
	req := PostTransactionRequest{
		AccountRefRequest: AccountRefRequest{AccountKind: "store", AccountID: "store-1"},
		Kind:              "income",
		Category:          "sales",
		Amount:            decimal.NewFromInt(200),
		PaymentMethod:     "cash",
		TransactionDate:   "14/03/2025",
	}

	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestComputeSnapshotRequest_ParseDate(t *testing.T) {
	req := ComputeSnapshotRequest{Date: "2025-06-01"}

	date, err := req.ParseDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Fatalf("unexpected date: %v", date)
	}
}

func TestComputeSnapshotRequest_ParseDateDefaultsToToday(t *testing.T) {
	req := ComputeSnapshotRequest{}

	date, err := req.ParseDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now().UTC()
	if date.Year() != now.Year() || date.Month() != now.Month() || date.Day() != now.Day() {
		t.Fatalf("expected today's date, got %v", date)
	}
}

func TestCreateTransferRequest_ToUseCaseInput(t *testing.T) {
	req := CreateTransferRequest{
		FromKind:   "store",
		FromID:     "store-a",
		ToKind:     "savings",
		ToID:       "sav-b",
		Amount:     decimal.NewFromInt(30),
		Notes:      "weekly sweep",
		StaffEmail: "staff@example.com",
	}

	input := req.ToUseCaseInput()

	if input.From != domain.StoreRef("store-a") || input.To != domain.SavingsRef("sav-b") {
		t.Fatalf("unexpected account refs: %+v", input)
	}

	if !input.Amount.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected amount: %s", input.Amount)
	}
}
