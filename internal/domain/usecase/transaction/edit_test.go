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

func TestEdit(t *testing.T) {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &entity.Transaction{
		ID:          transactionID,
		UserID:      uuid.NewString(),
		AmountCents: 1000,
		Remarks:     "Old remarks",
		Type:        entity.TypeIncome,
		CreatedAt:   time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Updates remarks only", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(existing, nil).Once()
		m.transactionRepo.EXPECT().UpdateRemarks(mock.Anything, transactionID, "New remarks").Return(nil).Once()

		err := service.Edit(ctx, transactionID, "New remarks")

		assert.NoError(t, err)
		// The balance is never touched on edit
		m.userRepo.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	// Unlike create, edit applies no remarks validation: empty and short
	// remarks pass straight through.
	t.Run("Empty remarks are accepted", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(existing, nil).Once()
		m.transactionRepo.EXPECT().UpdateRemarks(mock.Anything, transactionID, "").Return(nil).Once()

		err := service.Edit(ctx, transactionID, "")

		assert.NoError(t, err)
	})

	t.Run("Missing id", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		err := service.Edit(ctx, "", "New remarks")

		assert.ErrorIs(t, err, errs.ErrTransactionIDRequired)
		m.transactionRepo.AssertNotCalled(t, "UpdateRemarks", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed id", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		err := service.Edit(ctx, "not-a-uuid", "New remarks")

		assert.ErrorIs(t, err, errs.ErrInvalidID)
		m.transactionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).
			Return(nil, errs.ErrTransactionNotFound).Once()

		err := service.Edit(ctx, transactionID, "New remarks")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		m.transactionRepo.AssertNotCalled(t, "UpdateRemarks", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		storeErr := errs.Upstream("Database error", errors.New("connection reset"))
		m.transactionRepo.EXPECT().GetByID(mock.Anything, transactionID).Return(existing, nil).Once()
		m.transactionRepo.EXPECT().UpdateRemarks(mock.Anything, transactionID, "New remarks").Return(storeErr).Once()

		err := service.Edit(ctx, transactionID, "New remarks")

		assert.Equal(t, storeErr, err)
	})
}
