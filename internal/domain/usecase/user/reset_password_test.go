package user

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	account := &entity.User{ID: "user-1", Email: "alice@example.com", ResetCode: "48213"}

	t.Run("Successful reset", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmailAndResetCode(mock.Anything, "alice@example.com", "48213").
			Return(account, nil).Once()
		m.hasher.EXPECT().Hash("newsecret").Return("$2a$12$newhash", nil).Once()
		m.userRepo.EXPECT().ResetPassword(mock.Anything, "alice@example.com", "$2a$12$newhash").
			Return(nil).Once()

		err := useCase.ResetPassword(ctx, "alice@example.com", "48213", "newsecret")

		assert.NoError(t, err)
	})

	t.Run("Validation order", func(t *testing.T) {
		testCases := []struct {
			name        string
			email       string
			resetCode   string
			newPassword string
			expectedErr error
		}{
			{"Missing email", "", "48213", "newsecret", errs.ErrResetEmailRequired},
			{"Missing password", "alice@example.com", "48213", "", errs.ErrNewPasswordRequired},
			{"Missing code", "alice@example.com", "", "newsecret", errs.ErrResetCodeRequired},
			{"Short password", "alice@example.com", "48213", "abcd", errs.ErrNewPasswordTooShort},
			{"Password missing wins over code missing", "alice@example.com", "", "", errs.ErrNewPasswordRequired},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				useCase, m := newUseCaseWithMocks(t)

				err := useCase.ResetPassword(ctx, tc.email, tc.resetCode, tc.newPassword)

				assert.ErrorIs(t, err, tc.expectedErr)
				m.userRepo.AssertNotCalled(t, "GetByEmailAndResetCode", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Code does not match", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmailAndResetCode(mock.Anything, "alice@example.com", "00000").
			Return(nil, errs.ErrUserNotFound).Once()

		err := useCase.ResetPassword(ctx, "alice@example.com", "00000", "newsecret")

		assert.ErrorIs(t, err, errs.ErrResetCodeMismatch)
		m.userRepo.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store failure surfaces unchanged", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		storeErr := errs.Upstream("Database error", errors.New("connection reset"))
		m.userRepo.EXPECT().GetByEmailAndResetCode(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storeErr).Once()

		err := useCase.ResetPassword(ctx, "alice@example.com", "48213", "newsecret")

		assert.Equal(t, storeErr, err)
	})
}
