package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/google/uuid"
)

// TransactionType says which way a transaction moves the owner's balance
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValidTransactionType reports whether the given string is a known type
func IsValidTransactionType(t string) bool {
	return TransactionType(t) == TypeIncome || TransactionType(t) == TypeExpense
}

// MinRemarksLength is the minimum accepted remarks length
const MinRemarksLength = 5

// Transaction represents a single income or expense record. Amount is always
// a positive magnitude; the sign of its balance contribution is implied by
// the type. Amount, type and owner are immutable after creation — only
// remarks can be edited.
type Transaction struct {
	ID          string          // Opaque unique identifier (uuid)
	UserID      string          // Owner reference, immutable
	AmountCents int64           // Positive magnitude in cents
	Remarks     string          // Free-form note, at least MinRemarksLength characters
	Type        TransactionType // income or expense, immutable
	CreatedAt   time.Time       // When the transaction was created
}

// NewTransaction creates a transaction with a fresh id
func NewTransaction(
	userID string,
	amountCents int64,
	remarks string,
	transactionType TransactionType,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == "" {
		return nil, errs.ErrUserNotFound
	}
	if remarks == "" {
		return nil, errs.ErrRemarksRequired
	}
	if len(remarks) < MinRemarksLength {
		return nil, errs.ErrRemarksTooShort
	}
	if !IsValidTransactionType(string(transactionType)) {
		return nil, errs.Validation("Invalid transaction type!")
	}
	if amountCents < 0 {
		return nil, errs.ErrAmountNegative
	}

	return &Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		AmountCents: amountCents,
		Remarks:     remarks,
		Type:        transactionType,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// GetAmount returns the amount as a string with 2 decimal places
func (t *Transaction) GetAmount() string {
	return CentsToString(t.AmountCents)
}

// SignedCents returns the contribution of this transaction to the owner's
// balance: +amount for income, -amount for expense.
func (t *Transaction) SignedCents() int64 {
	if t.Type == TypeExpense {
		return -t.AmountCents
	}
	return t.AmountCents
}
