package usecase

import (
	"context"
	"time"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// SavingsAccountUseCase handles savings account registry operations.
type SavingsAccountUseCase struct {
	savingsRepo SavingsAccountRepository
	idGen       IDGenerator
}

// NewSavingsAccountUseCase creates a new SavingsAccountUseCase.
func NewSavingsAccountUseCase(savingsRepo SavingsAccountRepository, idGen IDGenerator) *SavingsAccountUseCase {
	return &SavingsAccountUseCase{
		savingsRepo: savingsRepo,
		idGen:       idGen,
	}
}

// CreateSavingsAccountInput represents input for creating a savings account.
type CreateSavingsAccountInput struct {
	Code          string
	Name          string
	AccountType   string
	BankName      string
	AccountNumber string
	Status        domain.AccountStatus
	Notes         string
}

// CreateSavingsAccount creates a new savings account, defaulting the status
// to active.
func (uc *SavingsAccountUseCase) CreateSavingsAccount(ctx context.Context, input CreateSavingsAccountInput) (*domain.SavingsAccount, error) {
	now := time.Now().UTC()

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	account := &domain.SavingsAccount{
		ID:            uc.idGen.Generate(),
		Code:          input.Code,
		Name:          input.Name,
		AccountType:   input.AccountType,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Status:        status,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := uc.savingsRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetSavingsAccount retrieves a savings account by ID.
func (uc *SavingsAccountUseCase) GetSavingsAccount(ctx context.Context, id string) (*domain.SavingsAccount, error) {
	return uc.savingsRepo.GetByID(ctx, id)
}

// ListSavingsAccountsInput represents input for listing savings accounts.
type ListSavingsAccountsInput struct {
	Limit  int
	Offset int
}

// ListSavingsAccounts lists savings accounts with pagination.
func (uc *SavingsAccountUseCase) ListSavingsAccounts(ctx context.Context, input ListSavingsAccountsInput) ([]*domain.SavingsAccount, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.savingsRepo.List(ctx, limit, offset)
}

// UpdateSavingsAccountInput represents input for updating a savings account.
type UpdateSavingsAccountInput struct {
	Code          string
	Name          string
	AccountType   string
	BankName      string
	AccountNumber string
	Status        domain.AccountStatus
	Notes         string
}

// UpdateSavingsAccount replaces a savings account's mutable fields.
func (uc *SavingsAccountUseCase) UpdateSavingsAccount(ctx context.Context, id string, input UpdateSavingsAccountInput) (*domain.SavingsAccount, error) {
	account, err := uc.savingsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Code = input.Code
	account.Name = input.Name
	account.AccountType = input.AccountType
	account.BankName = input.BankName
	account.AccountNumber = input.AccountNumber
	account.Status = input.Status
	account.Notes = input.Notes
	account.UpdatedAt = time.Now().UTC()

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := uc.savingsRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteSavingsAccount deletes a savings account by ID.
func (uc *SavingsAccountUseCase) DeleteSavingsAccount(ctx context.Context, id string) error {
	if _, err := uc.savingsRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.savingsRepo.Delete(ctx, id)
}
