package user

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// Dashboard returns the user record together with all of their
// transactions, in insertion order.
func (u *UserUseCase) Dashboard(ctx context.Context, userID string) (*entity.User, []entity.Transaction, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := u.transactionRepo.ListByUser(ctx, userID, nil)
	if err != nil {
		u.logger.Error("Failed to load dashboard transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, nil, err
	}

	return user, transactions, nil
}
