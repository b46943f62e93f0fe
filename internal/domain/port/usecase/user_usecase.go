package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RegisterInput carries the registration form fields. Balance is the
// optional initial balance; empty means zero.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Balance         string
}

// UserUseCase defines account operations exposed to the API layer
type UserUseCase interface {
	// Register creates an account and returns the user with a fresh token
	Register(ctx context.Context, input RegisterInput) (*entity.User, string, error)
	// Login verifies credentials and returns the user with a fresh token
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Dashboard returns the user and all of their transactions
	Dashboard(ctx context.Context, userID string) (*entity.User, []entity.Transaction, error)
	// ForgotPassword stores a reset code on the account and emails it
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword redeems a reset code and replaces the password
	ResetPassword(ctx context.Context, email, resetCode, newPassword string) error
}
