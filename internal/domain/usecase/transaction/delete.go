package transaction

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// Delete removes a transaction and reverses its balance contribution. The
// compensating increment is issued before the delete; if the delete fails
// after compensation succeeded, the balance runs ahead of the transaction
// list until the row is removed. The lookup guards double-compensation: a
// second delete of the same id fails with not-found before any write.
// Like Edit, there is no ownership check beyond existence.
func (s *Service) Delete(ctx context.Context, transactionID string) error {
	if !entity.IsValidID(transactionID) {
		return errs.ErrInvalidID
	}

	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if err := s.userRepo.AddToBalance(ctx, transaction.UserID, -transaction.SignedCents()); err != nil {
		s.logger.Error("Failed to reverse balance contribution", map[string]any{
			"transaction_id": transactionID,
			"user_id":        transaction.UserID,
			"error":          err.Error(),
		})
		return err
	}

	if err := s.transactionRepo.Delete(ctx, transactionID); err != nil {
		s.logger.Error("Balance compensated but transaction delete failed", map[string]any{
			"transaction_id": transactionID,
			"user_id":        transaction.UserID,
			"delta":          entity.CentsToString(-transaction.SignedCents()),
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": transactionID,
		"user_id":        transaction.UserID,
		"type":           string(transaction.Type),
		"amount":         transaction.GetAmount(),
	})
	return nil
}
