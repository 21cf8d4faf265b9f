package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
	"github.com/Ashish092/Rollin-Pos/internal/usecase/mocks"
)

func TestStoreUseCase_CreateStore(t *testing.T) {
	repo := mocks.NewMockStoreRepository()
	uc := usecase.NewStoreUseCase(repo, mocks.NewMockIDGenerator())

	store, err := uc.CreateStore(context.Background(), usecase.CreateStoreInput{
		Code:    "ST-01",
		Branch:  "Main",
		Address: "1 High St",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.ID == "" {
		t.Error("store must get a generated ID")
	}
	if store.Status != domain.StatusActive {
		t.Errorf("status = %s, want active by default", store.Status)
	}

	got, err := repo.GetByID(context.Background(), store.ID)
	if err != nil {
		t.Fatalf("store not persisted: %v", err)
	}
	if got.Code != "ST-01" {
		t.Errorf("persisted code = %s", got.Code)
	}
}

func TestStoreUseCase_CreateStore_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateStoreInput
		expectError error
	}{
		{
			name:        "missing code",
			input:       usecase.CreateStoreInput{Branch: "Main", Address: "addr"},
			expectError: domain.ErrMissingStoreCode,
		},
		{
			name:        "missing branch",
			input:       usecase.CreateStoreInput{Code: "ST-01", Address: "addr"},
			expectError: domain.ErrMissingBranch,
		},
		{
			name:        "missing address",
			input:       usecase.CreateStoreInput{Code: "ST-01", Branch: "Main"},
			expectError: domain.ErrMissingAddress,
		},
		{
			name:        "bad status",
			input:       usecase.CreateStoreInput{Code: "ST-01", Branch: "Main", Address: "addr", Status: "paused"},
			expectError: domain.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewStoreUseCase(mocks.NewMockStoreRepository(), mocks.NewMockIDGenerator())

			_, err := uc.CreateStore(context.Background(), tt.input)
			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestStoreUseCase_UpdateStore(t *testing.T) {
	repo := mocks.NewMockStoreRepository()
	repo.Add(&domain.Store{ID: "store-1", Code: "ST-01", Branch: "Main", Address: "addr", Status: domain.StatusActive})
	uc := usecase.NewStoreUseCase(repo, mocks.NewMockIDGenerator())

	store, err := uc.UpdateStore(context.Background(), "store-1", usecase.UpdateStoreInput{
		Code:    "ST-01",
		Branch:  "Main",
		Address: "2 Low St",
		Status:  domain.StatusStopped,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Address != "2 Low St" || store.Status != domain.StatusStopped {
		t.Errorf("update not applied: %+v", store)
	}
}

func TestStoreUseCase_UpdateStore_NotFound(t *testing.T) {
	uc := usecase.NewStoreUseCase(mocks.NewMockStoreRepository(), mocks.NewMockIDGenerator())

	_, err := uc.UpdateStore(context.Background(), "missing", usecase.UpdateStoreInput{
		Code: "ST-01", Branch: "Main", Address: "addr", Status: domain.StatusActive,
	})
	if !errors.Is(err, domain.ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestStoreUseCase_DeleteStore_NotFound(t *testing.T) {
	uc := usecase.NewStoreUseCase(mocks.NewMockStoreRepository(), mocks.NewMockIDGenerator())

	if err := uc.DeleteStore(context.Background(), "missing"); !errors.Is(err, domain.ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got %v", err)
	}
}
