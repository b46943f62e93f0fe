package transaction

import (
	"context"
)

// Edit updates the remarks of an existing transaction. Amount, type and
// owner are untouched, so the balance is never recomputed here. There is no
// ownership check beyond existence: any authenticated caller holding a valid
// transaction id may edit its remarks.
func (s *Service) Edit(ctx context.Context, transactionID, remarks string) error {
	if err := validateTransactionID(transactionID); err != nil {
		return err
	}

	if _, err := s.transactionRepo.GetByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.UpdateRemarks(ctx, transactionID, remarks); err != nil {
		s.logger.Error("Failed to update transaction remarks", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": transactionID,
	})
	return nil
}
