package auth

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	// The default cost of 12 makes each hash take noticeable time; a low
	// cost keeps the suite fast without changing behavior.
	hasher := &BcryptHasher{cost: bcrypt.MinCost}

	t.Run("Hash and compare round trip", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", hash)

		assert.NoError(t, hasher.Compare(hash, "secret123"))
		assert.Error(t, hasher.Compare(hash, "wrong"))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)
		second, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Default cost is embedded in the hash", func(t *testing.T) {
		hash, err := NewBcryptHasher().Hash("x")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, BcryptCost, cost)
	})
}

func TestResetCodeGenerator(t *testing.T) {
	generator := NewResetCodeGenerator()

	for i := 0; i < 50; i++ {
		code, err := generator.ResetCode()
		require.NoError(t, err)
		require.Len(t, code, 5)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
	}
}
