package transaction

import (
	"strings"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// validateRecordInput checks a create request and converts the amount to
// cents. Rules run in a fixed order and the first failure wins: amount
// present, remarks present, remarks length, amount numeric, amount not
// negative. Zero is an accepted amount.
func validateRecordInput(amount, remarks string) (int64, error) {
	if strings.TrimSpace(amount) == "" {
		return 0, errs.ErrAmountRequired
	}
	if remarks == "" {
		return 0, errs.ErrRemarksRequired
	}
	if len(remarks) < entity.MinRemarksLength {
		return 0, errs.ErrRemarksTooShort
	}
	return entity.ParseAmount(amount)
}

// validateTransactionID checks presence and well-formedness of an id
func validateTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.ErrTransactionIDRequired
	}
	if !entity.IsValidID(transactionID) {
		return errs.ErrInvalidID
	}
	return nil
}
