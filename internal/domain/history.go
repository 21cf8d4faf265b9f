package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyHistoryRecord is one account's cash snapshot for one calendar date.
// Keyed by (account, date); recomputation overwrites the stored row.
type DailyHistoryRecord struct {
	Account        AccountRef
	Date           time.Time
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	TotalTransfer  decimal.Decimal
	NetChange      decimal.Decimal
	CreatedAt      time.Time
}

// DailyTotals are the per-kind sums of one day's postings.
type DailyTotals struct {
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Transfer decimal.Decimal
}

// NetChange returns income - expense - transfer.
func (t DailyTotals) NetChange() decimal.Decimal {
	return t.Income.Sub(t.Expense).Sub(t.Transfer)
}

// NewDailyHistoryRecord derives a snapshot from the opening balance and the
// day's totals, holding the closing-balance identity
// closing = opening + income - expense - transfer.
func NewDailyHistoryRecord(account AccountRef, date time.Time, opening decimal.Decimal, totals DailyTotals, now time.Time) *DailyHistoryRecord {
	net := totals.NetChange()

	return &DailyHistoryRecord{
		Account:        account,
		Date:           date,
		OpeningBalance: opening,
		ClosingBalance: opening.Add(net),
		TotalIncome:    totals.Income,
		TotalExpense:   totals.Expense,
		TotalTransfer:  totals.Transfer,
		NetChange:      net,
		CreatedAt:      now,
	}
}
