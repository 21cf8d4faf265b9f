package usecase

import (
	"context"
	"time"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
)

// StoreUseCase handles store registry operations.
type StoreUseCase struct {
	storeRepo StoreRepository
	idGen     IDGenerator
}

// NewStoreUseCase creates a new StoreUseCase.
func NewStoreUseCase(storeRepo StoreRepository, idGen IDGenerator) *StoreUseCase {
	return &StoreUseCase{
		storeRepo: storeRepo,
		idGen:     idGen,
	}
}

// CreateStoreInput represents input for creating a store.
type CreateStoreInput struct {
	Code    string
	Branch  string
	Address string
	Phone   string
	Email   string
	Status  domain.AccountStatus
}

// CreateStore creates a new store, defaulting the status to active.
func (uc *StoreUseCase) CreateStore(ctx context.Context, input CreateStoreInput) (*domain.Store, error) {
	now := time.Now().UTC()

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	store := &domain.Store{
		ID:        uc.idGen.Generate(),
		Code:      input.Code,
		Branch:    input.Branch,
		Address:   input.Address,
		Phone:     input.Phone,
		Email:     input.Email,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.Validate(); err != nil {
		return nil, err
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// GetStore retrieves a store by ID.
func (uc *StoreUseCase) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	return uc.storeRepo.GetByID(ctx, id)
}

// ListStoresInput represents input for listing stores.
type ListStoresInput struct {
	Limit  int
	Offset int
}

// ListStores lists stores with pagination.
func (uc *StoreUseCase) ListStores(ctx context.Context, input ListStoresInput) ([]*domain.Store, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.storeRepo.List(ctx, limit, offset)
}

// UpdateStoreInput represents input for updating a store.
type UpdateStoreInput struct {
	Code    string
	Branch  string
	Address string
	Phone   string
	Email   string
	Status  domain.AccountStatus
}

// UpdateStore replaces a store's mutable fields.
func (uc *StoreUseCase) UpdateStore(ctx context.Context, id string, input UpdateStoreInput) (*domain.Store, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store.Code = input.Code
	store.Branch = input.Branch
	store.Address = input.Address
	store.Phone = input.Phone
	store.Email = input.Email
	store.Status = input.Status
	store.UpdatedAt = time.Now().UTC()

	if err := store.Validate(); err != nil {
		return nil, err
	}

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// DeleteStore deletes a store by ID.
func (uc *StoreUseCase) DeleteStore(ctx context.Context, id string) error {
	if _, err := uc.storeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.storeRepo.Delete(ctx, id)
}
