package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// AccountRefRequest identifies one account of either kind.
type AccountRefRequest struct {
	AccountKind string `json:"account_kind"`
	AccountID   string `json:"account_id"`
}

// ToDomain converts to a domain account reference.
func (r AccountRefRequest) ToDomain() domain.AccountRef {
	return domain.AccountRef{
		Kind: domain.AccountKind(r.AccountKind),
		ID:   r.AccountID,
	}
}

// CreateStoreRequest represents a request to register a store.
type CreateStoreRequest struct {
	Code    string `json:"code"`
	Branch  string `json:"branch"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Status  string `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateStoreRequest) ToUseCaseInput() usecase.CreateStoreInput {
	return usecase.CreateStoreInput{
		Code:    r.Code,
		Branch:  r.Branch,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Status:  domain.AccountStatus(r.Status),
	}
}

// UpdateStoreRequest represents a request to update a store.
type UpdateStoreRequest struct {
	Code    string `json:"code"`
	Branch  string `json:"branch"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Status  string `json:"status"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateStoreRequest) ToUseCaseInput() usecase.UpdateStoreInput {
	return usecase.UpdateStoreInput{
		Code:    r.Code,
		Branch:  r.Branch,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Status:  domain.AccountStatus(r.Status),
	}
}

// CreateSavingsAccountRequest represents a request to register a savings
// account.
type CreateSavingsAccountRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	AccountType   string `json:"account_type"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Status        string `json:"status,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSavingsAccountRequest) ToUseCaseInput() usecase.CreateSavingsAccountInput {
	return usecase.CreateSavingsAccountInput{
		Code:          r.Code,
		Name:          r.Name,
		AccountType:   r.AccountType,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Status:        domain.AccountStatus(r.Status),
		Notes:         r.Notes,
	}
}

// UpdateSavingsAccountRequest represents a request to update a savings
// account.
type UpdateSavingsAccountRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	AccountType   string `json:"account_type"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateSavingsAccountRequest) ToUseCaseInput() usecase.UpdateSavingsAccountInput {
	return usecase.UpdateSavingsAccountInput{
		Code:          r.Code,
		Name:          r.Name,
		AccountType:   r.AccountType,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Status:        domain.AccountStatus(r.Status),
		Notes:         r.Notes,
	}
}

// PostTransactionRequest represents a request to post one income or expense
// transaction.
type PostTransactionRequest struct {
	AccountRefRequest
	Kind            string          `json:"kind"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate string          `json:"transaction_date,omitempty"`
	StaffEmail      string          `json:"staff_email"`
}

// ToUseCaseInput converts to use case input. An invalid transaction_date is
// reported to the caller.
func (r *PostTransactionRequest) ToUseCaseInput() (usecase.PostTransactionInput, error) {
	input := usecase.PostTransactionInput{
		Account:       r.ToDomain(),
		Kind:          domain.TransactionKind(r.Kind),
		Category:      r.Category,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		StaffEmail:    r.StaffEmail,
	}

	if r.TransactionDate != "" {
		date, err := time.Parse(domain.DateLayout, r.TransactionDate)
		if err != nil {
			return usecase.PostTransactionInput{}, err
		}

		input.TransactionDate = &date
	}

	return input, nil
}

// CreateTransferRequest represents a request to move funds between accounts.
type CreateTransferRequest struct {
	FromKind   string          `json:"from_kind"`
	FromID     string          `json:"from_id"`
	ToKind     string          `json:"to_kind"`
	ToID       string          `json:"to_id"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	StaffEmail string          `json:"staff_email"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		From:       domain.AccountRef{Kind: domain.AccountKind(r.FromKind), ID: r.FromID},
		To:         domain.AccountRef{Kind: domain.AccountKind(r.ToKind), ID: r.ToID},
		Amount:     r.Amount,
		Notes:      r.Notes,
		StaffEmail: r.StaffEmail,
	}
}

// AdjustBalanceRequest represents a manual balance adjustment.
type AdjustBalanceRequest struct {
	AccountRefRequest
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"`
}

// ToUseCaseInput converts to use case input.
func (r *AdjustBalanceRequest) ToUseCaseInput() usecase.AdjustBalanceInput {
	return usecase.AdjustBalanceInput{
		Account: r.ToDomain(),
		Amount:  r.Amount,
		Kind:    r.Kind,
	}
}

// ComputeSnapshotRequest represents a request to compute one account's daily
// snapshot.
type ComputeSnapshotRequest struct {
	AccountRefRequest
	Date string `json:"date"`
}

// ParseDate parses the snapshot date, defaulting to today when omitted.
func (r *ComputeSnapshotRequest) ParseDate() (time.Time, error) {
	if r.Date == "" {
		return domain.TruncateToDate(time.Now().UTC()), nil
	}

	return time.Parse(domain.DateLayout, r.Date)
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
