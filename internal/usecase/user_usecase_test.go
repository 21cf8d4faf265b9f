package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
	"github.com/Ashish092/Rollin-Pos/internal/usecase/mocks"
)

func TestUserUseCase_CreateAndAuthenticate(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator())

	user, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "s3cret-pass",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.PasswordHash != "" {
		t.Error("returned user must not expose the password hash")
	}

	authed, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("authenticated as %s, created %s", authed.ID, user.ID)
	}
}

func TestUserUseCase_Authenticate_WrongPassword(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator())

	if _, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "staff@example.com",
		Name:     "Staff",
		Password: "correct-pass",
		Role:     domain.RoleStaff,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "staff@example.com",
		Password: "wrong-pass",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserUseCase_Authenticate_UnknownEmail(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator())

	_, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserUseCase_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateUserInput
	}{
		{name: "bad email", input: usecase.CreateUserInput{Email: "not-an-email", Name: "X", Password: "long-enough", Role: domain.RoleStaff}},
		{name: "short password", input: usecase.CreateUserInput{Email: "x@example.com", Name: "X", Password: "short", Role: domain.RoleStaff}},
		{name: "bad role", input: usecase.CreateUserInput{Email: "x@example.com", Name: "X", Password: "long-enough", Role: "owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator())

			if _, err := uc.CreateUser(context.Background(), tt.input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUserUseCase_CreateUser_DuplicateEmail(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator())

	input := usecase.CreateUserInput{
		Email:    "dup@example.com",
		Name:     "First",
		Password: "long-enough",
		Role:     domain.RoleStaff,
	}

	if _, err := uc.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := uc.CreateUser(context.Background(), input); err == nil {
		t.Error("expected duplicate-email rejection")
	}
}
