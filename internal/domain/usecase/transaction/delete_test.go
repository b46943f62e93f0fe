package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDelete(t *testing.T) {
	ctx := context.Background()
	transactionID := uuid.NewString()
	userID := uuid.NewString()
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	incomeTx := &entity.Transaction{
		ID:          transactionID,
		UserID:      userID,
		AmountCents: 5000,
		Remarks:     "Monthly salary",
		Type:        entity.TypeIncome,
		CreatedAt:   createdAt,
	}
	expenseTx := &entity.Transaction{
		ID:          transactionID,
		UserID:      userID,
		AmountCents: 5000,
		Remarks:     "Grocery shopping",
		Type:        entity.TypeExpense,
		CreatedAt:   createdAt,
	}

	t.Run("Deleting an income debits the balance back", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(incomeTx, nil).Once()
		m.userRepo.EXPECT().AddToBalance(mock.Anything, userID, int64(-5000)).Return(nil).Once()
		m.transactionRepo.EXPECT().Delete(mock.Anything, transactionID).Return(nil).Once()

		err := service.Delete(ctx, transactionID)

		assert.NoError(t, err)
	})

	t.Run("Deleting an expense credits the balance back", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(expenseTx, nil).Once()
		m.userRepo.EXPECT().AddToBalance(mock.Anything, userID, int64(5000)).Return(nil).Once()
		m.transactionRepo.EXPECT().Delete(mock.Anything, transactionID).Return(nil).Once()

		err := service.Delete(ctx, transactionID)

		assert.NoError(t, err)
	})

	t.Run("Malformed id", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		err := service.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, errs.ErrInvalidID)
		m.transactionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown transaction stops before any write", func(t *testing.T) {
		// This is the guard against double compensation: a repeated delete
		// of the same id fails the lookup, so the balance is only ever
		// compensated once per transaction.
		service, m := newServiceWithMocks(t)

		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).
			Return(nil, errs.ErrTransactionNotFound).Once()

		err := service.Delete(ctx, transactionID)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		m.userRepo.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything)
		m.transactionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Compensation failure leaves the row in place", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		storeErr := errs.Upstream("Database error", errors.New("connection reset"))
		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(incomeTx, nil).Once()
		m.userRepo.EXPECT().AddToBalance(mock.Anything, userID, int64(-5000)).Return(storeErr).Once()

		err := service.Delete(ctx, transactionID)

		assert.Equal(t, storeErr, err)
		m.transactionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Delete failure after compensation surfaces", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		storeErr := errs.Upstream("Database error", errors.New("connection reset"))
		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(incomeTx, nil).Once()
		m.userRepo.EXPECT().AddToBalance(mock.Anything, userID, int64(-5000)).Return(nil).Once()
		m.transactionRepo.EXPECT().Delete(mock.Anything, transactionID).Return(storeErr).Once()

		err := service.Delete(ctx, transactionID)

		assert.Equal(t, storeErr, err)
	})
}
