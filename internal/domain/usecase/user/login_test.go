package user

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	account := &entity.User{
		ID:           uuid.NewString(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hash",
		BalanceCents: 10000,
	}

	t.Run("Successful login", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(account, nil).Once()
		m.hasher.EXPECT().Compare("$2a$12$hash", "secret123").Return(nil).Once()
		m.tokenIssuer.EXPECT().Issue(coreport.Identity{ID: account.ID, Name: "Alice"}).
			Return("token-123", nil).Once()

		user, token, err := useCase.Login(ctx, "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, account, user)
		assert.Equal(t, "token-123", token)
	})

	t.Run("Unknown email", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").
			Return(nil, errs.ErrUserNotFound).Once()

		user, token, err := useCase.Login(ctx, "nobody@example.com", "secret123")

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, errs.ErrEmailNotFound)
	})

	t.Run("Wrong password", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(account, nil).Once()
		m.hasher.EXPECT().Compare("$2a$12$hash", "wrong").
			Return(errors.New("hashedPassword is not the hash of the given password")).Once()

		user, token, err := useCase.Login(ctx, "alice@example.com", "wrong")

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, errs.ErrCredentialMismatch)
		m.tokenIssuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		storeErr := errs.Upstream("Database error", errors.New("connection reset"))
		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, storeErr).Once()

		_, _, err := useCase.Login(ctx, "alice@example.com", "secret123")

		assert.Equal(t, storeErr, err)
	})

	t.Run("Token issue failure", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(account, nil).Once()
		m.hasher.EXPECT().Compare(mock.Anything, mock.Anything).Return(nil).Once()
		m.tokenIssuer.EXPECT().Issue(mock.Anything).
			Return("", errors.New("signing failed")).Once()

		_, _, err := useCase.Login(ctx, "alice@example.com", "secret123")

		assert.True(t, errs.IsKind(err, errs.KindUpstream))
	})
}
