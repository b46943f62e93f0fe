package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.NewString()

	newTimeProvider := func(t *testing.T) *coremocks.MockTimeProvider {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		return mockTime
	}

	t.Run("Successful creation", func(t *testing.T) {
		transaction, err := NewTransaction(userID, 1050, "Grocery shopping", TypeExpense, newTimeProvider(t))

		require.NoError(t, err)
		assert.True(t, IsValidID(transaction.ID))
		assert.Equal(t, userID, transaction.UserID)
		assert.Equal(t, int64(1050), transaction.AmountCents)
		assert.Equal(t, "Grocery shopping", transaction.Remarks)
		assert.Equal(t, TypeExpense, transaction.Type)
		assert.Equal(t, fixedTime, transaction.CreatedAt)
	})

	t.Run("Each transaction gets a unique id", func(t *testing.T) {
		first, err := NewTransaction(userID, 100, "First salary", TypeIncome, newTimeProvider(t))
		require.NoError(t, err)
		second, err := NewTransaction(userID, 100, "First salary", TypeIncome, newTimeProvider(t))
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			name            string
			userID          string
			amountCents     int64
			remarks         string
			transactionType TransactionType
			expectedErr     error
		}{
			{"Missing user", "", 100, "Some remarks", TypeIncome, errs.ErrUserNotFound},
			{"Empty remarks", userID, 100, "", TypeIncome, errs.ErrRemarksRequired},
			{"Remarks too short", userID, 100, "abcd", TypeIncome, errs.ErrRemarksTooShort},
			{"Negative amount", userID, -100, "Some remarks", TypeIncome, errs.ErrAmountNegative},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				transaction, err := NewTransaction(tc.userID, tc.amountCents, tc.remarks, tc.transactionType, newTimeProvider(t))
				assert.Nil(t, transaction)
				assert.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})

	t.Run("Unknown transaction type", func(t *testing.T) {
		transaction, err := NewTransaction(userID, 100, "Some remarks", TransactionType("transfer"), newTimeProvider(t))
		assert.Nil(t, transaction)
		require.Error(t, err)
		assert.Equal(t, "Invalid transaction type!", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})

	t.Run("Five character remarks pass the length check", func(t *testing.T) {
		transaction, err := NewTransaction(userID, 100, "lunch", TypeExpense, newTimeProvider(t))
		require.NoError(t, err)
		assert.Equal(t, "lunch", transaction.Remarks)
	})

	t.Run("Zero amount is accepted", func(t *testing.T) {
		transaction, err := NewTransaction(userID, 0, "Free sample", TypeIncome, newTimeProvider(t))
		require.NoError(t, err)
		assert.Equal(t, int64(0), transaction.AmountCents)
	})
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("income"))
	assert.True(t, IsValidTransactionType("expense"))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("Income"))
	assert.False(t, IsValidTransactionType("transfer"))
}

func TestTransactionSignedCents(t *testing.T) {
	income := Transaction{AmountCents: 2500, Type: TypeIncome}
	expense := Transaction{AmountCents: 2500, Type: TypeExpense}

	assert.Equal(t, int64(2500), income.SignedCents())
	assert.Equal(t, int64(-2500), expense.SignedCents())
}

func TestTransactionGetAmount(t *testing.T) {
	transaction := Transaction{AmountCents: 1015, Type: TypeExpense}
	// The rendered amount is always the positive magnitude
	assert.Equal(t, "10.15", transaction.GetAmount())
}
