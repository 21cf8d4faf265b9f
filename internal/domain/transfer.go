package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord links the two transaction legs of an inter-account
// fund movement under a unique reference.
type TransferRecord struct {
	ID                    string
	Reference             string
	From                  AccountRef
	To                    AccountRef
	Amount                decimal.Decimal
	Notes                 string
	TransactionDate       time.Time
	StaffEmail            string
	OutgoingTransactionID string
	IncomingTransactionID string
	CreatedAt             time.Time
}

// Validate validates a transfer request's endpoints and amount.
func (t *TransferRecord) Validate() error {
	if err := t.From.Validate(); err != nil {
		return err
	}

	if err := t.To.Validate(); err != nil {
		return err
	}

	if t.From.Equal(t.To) {
		return ErrSameAccount
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}
