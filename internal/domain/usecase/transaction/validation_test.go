package transaction

import (
	"testing"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateRecordInput(t *testing.T) {
	t.Run("Valid input", func(t *testing.T) {
		cents, err := validateRecordInput("10.50", "Monthly salary")
		assert.NoError(t, err)
		assert.Equal(t, int64(1050), cents)
	})

	t.Run("Zero amount is valid", func(t *testing.T) {
		cents, err := validateRecordInput("0", "Free lunch")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), cents)
	})

	// The rules run in a fixed order and the first failure wins, so a
	// request that is wrong in several ways reports the earliest rule.
	t.Run("Rule order", func(t *testing.T) {
		testCases := []struct {
			name        string
			amount      string
			remarks     string
			expectedErr error
		}{
			{"Amount missing wins over remarks missing", "", "", errs.ErrAmountRequired},
			{"Blank amount counts as missing", "   ", "", errs.ErrAmountRequired},
			{"Remarks missing wins over bad amount", "abc", "", errs.ErrRemarksRequired},
			{"Remarks length wins over bad amount", "abc", "hi", errs.ErrRemarksTooShort},
			{"Non-numeric amount", "abc", "Valid remarks", errs.ErrAmountNotNumeric},
			{"Negative amount", "-5.00", "Valid remarks", errs.ErrAmountNegative},
			{"Numeric check runs before sign check", "-abc", "Valid remarks", errs.ErrAmountNotNumeric},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := validateRecordInput(tc.amount, tc.remarks)
				assert.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})
}

func TestValidateTransactionID(t *testing.T) {
	assert.NoError(t, validateTransactionID(uuid.NewString()))
	assert.ErrorIs(t, validateTransactionID(""), errs.ErrTransactionIDRequired)
	assert.ErrorIs(t, validateTransactionID("not-a-uuid"), errs.ErrInvalidID)
}
