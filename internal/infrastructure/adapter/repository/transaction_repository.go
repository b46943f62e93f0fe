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

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	return errs.Upstream("Database error", err)
}

// Create persists a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"type":           string(transaction.Type),
		"amount":         transaction.GetAmount(),
	})

	result := r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}
	return nil
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).First(&transactionModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error)
	}
	return transactionModel.ToEntity(), nil
}

// UpdateRemarks updates only the remarks field
func (r *TransactionRepository) UpdateRemarks(ctx context.Context, id, remarks string) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("remarks", remarks)
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by id
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ListByUser returns the user's transactions in insertion order, optionally
// filtered by type
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, transactionType *entity.TransactionType) ([]entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC")
	if transactionType != nil {
		query = query.Where("transaction_type = ?", string(*transactionType))
	}

	var transactionModels []model.Transaction
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err)
	}

	transactions := make([]entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, *transactionModels[i].ToEntity())
	}
	return transactions, nil
}
