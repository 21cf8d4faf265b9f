package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a posting's effect on the balance ledger.
type TransactionKind string

const (
	KindIncome   TransactionKind = "income"
	KindExpense  TransactionKind = "expense"
	KindTransfer TransactionKind = "transfer"
)

// IsValid checks if the kind is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpense || k == KindTransfer
}

// Categories used for the two legs of a transfer.
const (
	CategoryTransferOut = "transfer_out"
	CategoryTransferIn  = "transfer_in"
)

// TransactionRecord is a single posting against one account's balance.
// Records are immutable once created; the only delete path is the
// compensating delete during transfer rollback.
type TransactionRecord struct {
	ID              string
	Account         AccountRef
	Kind            TransactionKind
	Category        string
	Amount          decimal.Decimal
	PaymentMethod   string
	Notes           string
	TransactionDate time.Time
	StaffEmail      string
	CreatedAt       time.Time
}

// Validate checks required posting fields.
func (t *TransactionRecord) Validate() error {
	if err := t.Account.Validate(); err != nil {
		return err
	}

	if !t.Kind.IsValid() {
		return ErrInvalidTransactionKind
	}

	if t.Category == "" {
		return ErrMissingCategory
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.PaymentMethod == "" {
		return ErrMissingPaymentMethod
	}

	return nil
}

// SignedAmount returns the amount with the balance-ledger sign convention
// applied: income adds, expense and transfer subtract.
func (t *TransactionRecord) SignedAmount() decimal.Decimal {
	if t.Kind == KindIncome {
		return t.Amount
	}

	return t.Amount.Neg()
}
