package transaction

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Service implements the transaction operations that keep the owner's
// balance consistent with the transaction list. Every mutation pairs a
// transaction write with an atomic signed increment of the owner's balance;
// the two writes are deliberately not wrapped in a store transaction, so a
// failure between them leaves a caller-visible error and a persisted partial
// effect.
type Service struct {
	transactionRepo persistence.TransactionRepository
	userRepo        persistence.UserRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates the transaction service
func NewService(
	transactionRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Ensure Service satisfies the usecase port
var _ usecase.TransactionUseCase = (*Service)(nil)

// List returns the caller's transactions in insertion order. The owner
// filter is always applied; a transaction_type value, when present, narrows
// the result without being validated (an unknown type simply matches
// nothing).
func (s *Service) List(ctx context.Context, userID, transactionType string) ([]entity.Transaction, error) {
	var filter *entity.TransactionType
	if transactionType != "" {
		t := entity.TransactionType(transactionType)
		filter = &t
	}

	transactions, err := s.transactionRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return transactions, nil
}
