package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *entity.User) error
	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByEmailAndResetCode retrieves a user matching both email and the
	// currently stored reset code
	GetByEmailAndResetCode(ctx context.Context, email, resetCode string) (*entity.User, error)
	// SetResetCode stores a password reset code on the user with this email
	SetResetCode(ctx context.Context, email, resetCode string) error
	// ResetPassword replaces the password hash and blanks the reset code
	ResetPassword(ctx context.Context, email, passwordHash string) error
	// AddToBalance applies a signed delta to the user's balance as a single
	// atomic increment. It never reads the current value first.
	AddToBalance(ctx context.Context, userID string, deltaCents int64) error
}
