package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// TransactionRepository defines data access operations for transactions
type TransactionRepository interface {
	// Create persists a new transaction
	Create(ctx context.Context, transaction *entity.Transaction) error
	// GetByID retrieves a transaction by id
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// UpdateRemarks updates only the remarks field
	UpdateRemarks(ctx context.Context, id, remarks string) error
	// Delete removes a transaction by id
	Delete(ctx context.Context, id string) error
	// ListByUser returns the user's transactions in insertion order,
	// optionally filtered by type
	ListByUser(ctx context.Context, userID string, transactionType *entity.TransactionType) ([]entity.Transaction, error)
}
