package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// StoreResponse represents a store in API responses.
type StoreResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Branch    string    `json:"branch"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreFromDomain converts a domain store to a response.
func StoreFromDomain(s *domain.Store) *StoreResponse {
	return &StoreResponse{
		ID:        s.ID,
		Code:      s.Code,
		Branch:    s.Branch,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// StoresFromDomain converts domain stores to responses.
func StoresFromDomain(stores []*domain.Store) []*StoreResponse {
	result := make([]*StoreResponse, len(stores))
	for i, s := range stores {
		result[i] = StoreFromDomain(s)
	}
	return result
}

// SavingsAccountResponse represents a savings account in API responses.
type SavingsAccountResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	AccountType   string    `json:"account_type"`
	BankName      string    `json:"bank_name,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavingsAccountFromDomain converts a domain savings account to a response.
func SavingsAccountFromDomain(a *domain.SavingsAccount) *SavingsAccountResponse {
	return &SavingsAccountResponse{
		ID:            a.ID,
		Code:          a.Code,
		Name:          a.Name,
		AccountType:   a.AccountType,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// SavingsAccountsFromDomain converts domain savings accounts to responses.
func SavingsAccountsFromDomain(accounts []*domain.SavingsAccount) []*SavingsAccountResponse {
	result := make([]*SavingsAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = SavingsAccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a posting in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	AccountKind     string          `json:"account_kind"`
	AccountID       string          `json:"account_id"`
	Kind            string          `json:"kind"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	StaffEmail      string          `json:"staff_email"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain posting to a response.
func TransactionFromDomain(t *domain.TransactionRecord) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		AccountKind:     string(t.Account.Kind),
		AccountID:       t.Account.ID,
		Kind:            string(t.Kind),
		Category:        t.Category,
		Amount:          t.Amount,
		PaymentMethod:   t.PaymentMethod,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate.Format(domain.DateLayout),
		StaffEmail:      t.StaffEmail,
		CreatedAt:       t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain postings to responses.
func TransactionsFromDomain(records []*domain.TransactionRecord) []*TransactionResponse {
	result := make([]*TransactionResponse, len(records))
	for i, t := range records {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// TransferRecordResponse represents a transfer record in API responses.
type TransferRecordResponse struct {
	ID                    string          `json:"id"`
	Reference             string          `json:"reference"`
	FromKind              string          `json:"from_kind"`
	FromID                string          `json:"from_id"`
	ToKind                string          `json:"to_kind"`
	ToID                  string          `json:"to_id"`
	Amount                decimal.Decimal `json:"amount"`
	Notes                 string          `json:"notes,omitempty"`
	TransactionDate       string          `json:"transaction_date"`
	StaffEmail            string          `json:"staff_email"`
	OutgoingTransactionID string          `json:"outgoing_transaction_id"`
	IncomingTransactionID string          `json:"incoming_transaction_id"`
	CreatedAt             time.Time       `json:"created_at"`
}

// TransferRecordFromDomain converts a domain transfer record to a response.
func TransferRecordFromDomain(t *domain.TransferRecord) *TransferRecordResponse {
	return &TransferRecordResponse{
		ID:                    t.ID,
		Reference:             t.Reference,
		FromKind:              string(t.From.Kind),
		FromID:                t.From.ID,
		ToKind:                string(t.To.Kind),
		ToID:                  t.To.ID,
		Amount:                t.Amount,
		Notes:                 t.Notes,
		TransactionDate:       t.TransactionDate.Format(domain.DateLayout),
		StaffEmail:            t.StaffEmail,
		OutgoingTransactionID: t.OutgoingTransactionID,
		IncomingTransactionID: t.IncomingTransactionID,
		CreatedAt:             t.CreatedAt,
	}
}

// TransferRecordsFromDomain converts domain transfer records to responses.
func TransferRecordsFromDomain(transfers []*domain.TransferRecord) []*TransferRecordResponse {
	result := make([]*TransferRecordResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferRecordFromDomain(t)
	}
	return result
}

// TransferResultResponse is the full outcome of a completed transfer.
type TransferResultResponse struct {
	Reference string                  `json:"reference"`
	Outgoing  *TransactionResponse    `json:"outgoing"`
	Incoming  *TransactionResponse    `json:"incoming"`
	Record    *TransferRecordResponse `json:"record"`
}

// TransferResultFromUseCase converts a transfer result to a response.
func TransferResultFromUseCase(r *usecase.TransferResult) *TransferResultResponse {
	return &TransferResultResponse{
		Reference: r.Reference,
		Outgoing:  TransactionFromDomain(r.Outgoing),
		Incoming:  TransactionFromDomain(r.Incoming),
		Record:    TransferRecordFromDomain(r.Record),
	}
}

// BalanceResponse represents a balance entry in API responses.
type BalanceResponse struct {
	AccountKind    string          `json:"account_kind"`
	AccountID      string          `json:"account_id"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// BalanceFromDomain converts a domain balance entry to a response.
func BalanceFromDomain(e *domain.BalanceEntry) *BalanceResponse {
	return &BalanceResponse{
		AccountKind:    string(e.Account.Kind),
		AccountID:      e.Account.ID,
		CurrentBalance: e.CurrentBalance,
		LastUpdated:    e.LastUpdated,
	}
}

// BalancesFromDomain converts domain balance entries to responses.
func BalancesFromDomain(entries []*domain.BalanceEntry) []*BalanceResponse {
	result := make([]*BalanceResponse, len(entries))
	for i, e := range entries {
		result[i] = BalanceFromDomain(e)
	}
	return result
}

// HistoryResponse represents a daily snapshot in API responses.
type HistoryResponse struct {
	AccountKind    string          `json:"account_kind"`
	AccountID      string          `json:"account_id"`
	Date           string          `json:"date"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	TotalTransfer  decimal.Decimal `json:"total_transfer"`
	NetChange      decimal.Decimal `json:"net_change"`
	CreatedAt      time.Time       `json:"created_at"`
}

// HistoryFromDomain converts a domain snapshot to a response.
func HistoryFromDomain(h *domain.DailyHistoryRecord) *HistoryResponse {
	return &HistoryResponse{
		AccountKind:    string(h.Account.Kind),
		AccountID:      h.Account.ID,
		Date:           h.Date.Format(domain.DateLayout),
		OpeningBalance: h.OpeningBalance,
		ClosingBalance: h.ClosingBalance,
		TotalIncome:    h.TotalIncome,
		TotalExpense:   h.TotalExpense,
		TotalTransfer:  h.TotalTransfer,
		NetChange:      h.NetChange,
		CreatedAt:      h.CreatedAt,
	}
}

// HistoriesFromDomain converts domain snapshots to responses.
func HistoriesFromDomain(records []*domain.DailyHistoryRecord) []*HistoryResponse {
	result := make([]*HistoryResponse, len(records))
	for i, h := range records {
		result[i] = HistoryFromDomain(h)
	}
	return result
}

// DriftResponse represents one account's reconciliation outcome.
type DriftResponse struct {
	AccountKind   string          `json:"account_kind"`
	AccountID     string          `json:"account_id"`
	StoredBalance decimal.Decimal `json:"stored_balance"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
	Drift         decimal.Decimal `json:"drift"`
	InSync        bool            `json:"in_sync"`
	CheckedAt     time.Time       `json:"checked_at"`
}

// DriftFromUseCase converts a drift result to a response.
func DriftFromUseCase(d *usecase.DriftResult) *DriftResponse {
	return &DriftResponse{
		AccountKind:   string(d.Account.Kind),
		AccountID:     d.Account.ID,
		StoredBalance: d.StoredBalance,
		LedgerBalance: d.LedgerBalance,
		Drift:         d.Drift,
		InSync:        d.InSync,
		CheckedAt:     d.CheckedAt,
	}
}

// DriftReportResponse is a reconciliation sweep over every balance entry.
type DriftReportResponse struct {
	TotalAccounts   int              `json:"total_accounts"`
	DriftedAccounts int              `json:"drifted_accounts"`
	Results         []*DriftResponse `json:"results"`
	CheckedAt       time.Time        `json:"checked_at"`
}

// DriftReportFromUseCase converts a drift report to a response.
func DriftReportFromUseCase(r *usecase.DriftReport) *DriftReportResponse {
	results := make([]*DriftResponse, len(r.Results))
	for i, d := range r.Results {
		results[i] = DriftFromUseCase(d)
	}

	return &DriftReportResponse{
		TotalAccounts:   r.TotalAccounts,
		DriftedAccounts: r.DriftedAccounts,
		Results:         results,
		CheckedAt:       r.CheckedAt,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
