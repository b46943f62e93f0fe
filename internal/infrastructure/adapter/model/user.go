package model

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// User represents the database model for users
type User struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Name         string    `gorm:"not null;size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	Balance      int64     `gorm:"not null"` // Balance in cents
	ResetCode    string    `gorm:"size:16"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// FromEntity maps a domain user onto the database model
func FromEntity(u *entity.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Balance:      u.BalanceCents,
		ResetCode:    u.ResetCode,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToEntity maps the database model back to a domain user
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		BalanceCents: m.Balance,
		ResetCode:    m.ResetCode,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
