package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceEntry holds the current cash position of one account.
// At most one entry exists per account; the entry is created lazily by the
// first posting that touches the account.
type BalanceEntry struct {
	Account        AccountRef
	CurrentBalance decimal.Decimal
	LastUpdated    time.Time
}
