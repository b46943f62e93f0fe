package entity

import (
	"net/mail"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/google/uuid"
)

// User represents a registered account. Balance is a denormalized running
// total: initial balance at registration plus the signed amounts of every
// transaction this user owns. It is only ever mutated through the
// transaction create/delete operations.
type User struct {
	ID           string    // Opaque unique identifier (uuid)
	Name         string    // Display name
	Email        string    // Unique login email
	PasswordHash string    // bcrypt hash, never serialized outward
	BalanceCents int64     // Balance in cents to avoid floating point precision issues
	ResetCode    string    // One-time numeric password reset code, blank when unset
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with a fresh id and the given initial balance.
// Name, email and password hash must already have passed the registration
// validation chain; this constructor only enforces the structural pieces.
func NewUser(name, email, passwordHash string, balanceCents int64, timeProvider coreport.TimeProvider) (*User, error) {
	if name == "" {
		return nil, errs.ErrNameRequired
	}
	if email == "" {
		return nil, errs.ErrEmailMustBeProvided
	}
	if !IsValidEmail(email) {
		return nil, errs.ErrInvalidEmail
	}

	now := timeProvider.Now()
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		BalanceCents: balanceCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return CentsToString(u.BalanceCents)
}

// IsValidEmail checks email syntax. The address must parse and must not
// carry a display name.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsValidID reports whether the given string is a well-formed record id
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
