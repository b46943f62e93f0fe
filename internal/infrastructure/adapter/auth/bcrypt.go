package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// BcryptCost matches the work factor the service has always used for
// stored hashes
const BcryptCost = 12

// BcryptHasher implements the PasswordHasher port with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default cost
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: BcryptCost}
}

// Ensure BcryptHasher satisfies the PasswordHasher port
var _ core.PasswordHasher = (*BcryptHasher)(nil)

// Hash returns the salted bcrypt hash of a plain-text password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a plain-text password against a stored hash
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
