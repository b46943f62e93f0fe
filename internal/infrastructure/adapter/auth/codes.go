package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// ResetCodeGenerator produces 5-digit numeric one-time codes
type ResetCodeGenerator struct{}

// NewResetCodeGenerator creates a new generator
func NewResetCodeGenerator() *ResetCodeGenerator {
	return &ResetCodeGenerator{}
}

// Ensure ResetCodeGenerator satisfies the CodeGenerator port
var _ core.CodeGenerator = (*ResetCodeGenerator)(nil)

// ResetCode returns a code in the range 10000-99999
func (g *ResetCodeGenerator) ResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+10000), nil
}
