package transaction

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RecordIncome validates and stores an income transaction, then credits the
// owner's balance by its amount.
func (s *Service) RecordIncome(ctx context.Context, userID, amount, remarks string) error {
	return s.record(ctx, userID, amount, remarks, entity.TypeIncome)
}

// RecordExpense validates and stores an expense transaction, then debits the
// owner's balance by its amount.
func (s *Service) RecordExpense(ctx context.Context, userID, amount, remarks string) error {
	return s.record(ctx, userID, amount, remarks, entity.TypeExpense)
}

func (s *Service) record(ctx context.Context, userID, amount, remarks string, transactionType entity.TransactionType) error {
	// Validation happens entirely before any write; a failure here leaves
	// no partial effect.
	amountCents, err := validateRecordInput(amount, remarks)
	if err != nil {
		return err
	}

	transaction, err := entity.NewTransaction(userID, amountCents, remarks, transactionType, s.timeProvider)
	if err != nil {
		return err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"user_id": userID,
			"type":    string(transactionType),
			"error":   err.Error(),
		})
		return err
	}

	// Second write of the pair: an atomic signed increment of the owner's
	// balance. If it fails, the transaction row stays behind and the error
	// surfaces to the caller.
	if err := s.userRepo.AddToBalance(ctx, userID, transaction.SignedCents()); err != nil {
		s.logger.Error("Transaction stored but balance increment failed", map[string]any{
			"user_id":        userID,
			"transaction_id": transaction.ID,
			"delta":          entity.CentsToString(transaction.SignedCents()),
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction recorded", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"type":           string(transactionType),
		"amount":         transaction.GetAmount(),
	})
	return nil
}
