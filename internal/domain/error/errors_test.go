package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("Domain error returns its kind", func(t *testing.T) {
		kind, ok := KindOf(ErrAmountRequired)
		assert.True(t, ok)
		assert.Equal(t, KindValidation, kind)

		kind, ok = KindOf(ErrTransactionNotFound)
		assert.True(t, ok)
		assert.Equal(t, KindNotFound, kind)

		kind, ok = KindOf(ErrEmailTaken)
		assert.True(t, ok)
		assert.Equal(t, KindConflict, kind)

		kind, ok = KindOf(ErrUnauthorized)
		assert.True(t, ok)
		assert.Equal(t, KindUnauthorized, kind)
	})

	t.Run("Wrapped domain error is still classified", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", ErrInvalidID)
		kind, ok := KindOf(wrapped)
		assert.True(t, ok)
		assert.Equal(t, KindValidation, kind)
	})

	t.Run("Plain error is not classified", func(t *testing.T) {
		_, ok := KindOf(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrUserNotFound, cause)

	assert.Equal(t, ErrUserNotFound.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsKind(err, KindNotFound))
}

func TestUpstreamKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Upstream("store unavailable", cause)

	assert.Equal(t, "store unavailable", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsKind(err, KindUpstream))
}

func TestMessagesAreStable(t *testing.T) {
	// These strings are part of the HTTP contract.
	assert.Equal(t, "Amount is required!", ErrAmountRequired.Error())
	assert.Equal(t, "Remarks must be at least 5 characters long!", ErrRemarksTooShort.Error())
	assert.Equal(t, "Please provide a valid id!", ErrInvalidID.Error())
	assert.Equal(t, "Transaction not found!", ErrTransactionNotFound.Error())
	assert.Equal(t, "This email already exists!", ErrEmailTaken.Error())
	assert.Equal(t, "Unauthorized!", ErrUnauthorized.Error())
}
