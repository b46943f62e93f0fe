package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// TransactionUseCase defines the balance-consistency operations exposed to
// the API layer. Amounts arrive as the raw strings supplied by the caller;
// validation and conversion to cents happen inside.
type TransactionUseCase interface {
	// RecordIncome stores an income transaction and credits the balance
	RecordIncome(ctx context.Context, userID, amount, remarks string) error
	// RecordExpense stores an expense transaction and debits the balance
	RecordExpense(ctx context.Context, userID, amount, remarks string) error
	// Edit updates the remarks of an existing transaction
	Edit(ctx context.Context, transactionID, remarks string) error
	// Delete removes a transaction and reverses its balance contribution
	Delete(ctx context.Context, transactionID string) error
	// List returns the caller's transactions, optionally filtered by type
	List(ctx context.Context, userID, transactionType string) ([]entity.Transaction, error)
}
