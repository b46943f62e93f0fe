package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrEmailTaken
	}

	return errs.Upstream("Database error", err)
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	result := r.db.WithContext(ctx).Create(model.FromEntity(user))
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error)
	}
	return userModel.ToEntity(), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "email = ?", email)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error)
	}
	return userModel.ToEntity(), nil
}

// GetByEmailAndResetCode retrieves a user matching both email and the stored
// reset code
func (r *UserRepository) GetByEmailAndResetCode(ctx context.Context, email, resetCode string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		First(&userModel, "email = ? AND reset_code = ? AND reset_code <> ''", email, resetCode)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by reset code", result.Error)
	}
	return userModel.ToEntity(), nil
}

// SetResetCode stores a password reset code on the user with this email
func (r *UserRepository) SetResetCode(ctx context.Context, email, resetCode string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"reset_code": resetCode,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("setting reset code", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// ResetPassword replaces the password hash and blanks the reset code
func (r *UserRepository) ResetPassword(ctx context.Context, email, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"reset_code":    "",
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("resetting password", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("Password reset", map[string]any{
		"email": email,
	})
	return nil
}

// AddToBalance applies a signed delta as a single atomic increment. The
// balance is never read first, so concurrent increments cannot clobber
// each other.
func (r *UserRepository) AddToBalance(ctx context.Context, userID string, deltaCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", deltaCents),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("incrementing balance", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Debug("Balance incremented", map[string]any{
		"user_id": userID,
		"delta":   entity.CentsToString(deltaCents),
	})
	return nil
}
