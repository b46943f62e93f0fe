package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RecordTransactionRequest represents the API request for adding income or expense
type RecordTransactionRequest struct {
	Amount  FlexString `json:"amount"`
	Remarks string     `json:"remarks"`
}

// EditTransactionRequest represents the API request for updating remarks
type EditTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
	Remarks       string `json:"remarks"`
}

// TransactionData is the API payload for a single transaction
type TransactionData struct {
	ID              string    `json:"_id"`
	UserID          string    `json:"user_id"`
	Amount          string    `json:"amount"`
	Remarks         string    `json:"remarks"`
	TransactionType string    `json:"transaction_type"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListTransactionsResponse is returned from the listing endpoint. Data is an
// array of transactions, or a hint string when the user has none.
type ListTransactionsResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// TransactionToData maps a domain transaction to its API payload
func TransactionToData(transaction *entity.Transaction) TransactionData {
	return TransactionData{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		Amount:          transaction.GetAmount(),
		Remarks:         transaction.Remarks,
		TransactionType: string(transaction.Type),
		CreatedAt:       transaction.CreatedAt,
	}
}

// TransactionsToData maps a slice of domain transactions to API payloads
func TransactionsToData(transactions []entity.Transaction) []TransactionData {
	data := make([]TransactionData, 0, len(transactions))
	for i := range transactions {
		data = append(data, TransactionToData(&transactions[i]))
	}
	return data
}
