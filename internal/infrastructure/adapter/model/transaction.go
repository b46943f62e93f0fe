package model

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	Amount          int64     `gorm:"not null"` // Amount in cents
	Remarks         string    `gorm:"not null;type:text"`
	TransactionType string    `gorm:"not null;size:16"`
	CreatedAt       time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionFromEntity maps a domain transaction onto the database model
func TransactionFromEntity(t *entity.Transaction) *Transaction {
	return &Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		Amount:          t.AmountCents,
		Remarks:         t.Remarks,
		TransactionType: string(t.Type),
		CreatedAt:       t.CreatedAt,
	}
}

// ToEntity maps the database model back to a domain transaction
func (m *Transaction) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		AmountCents: m.Amount,
		Remarks:     m.Remarks,
		Type:        entity.TransactionType(m.TransactionType),
		CreatedAt:   m.CreatedAt,
	}
}
