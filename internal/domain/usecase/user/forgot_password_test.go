package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()
	account := &entity.User{ID: "user-1", Email: "alice@example.com"}

	t.Run("Stores the code then mails it", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(account, nil).Once()
		m.codes.EXPECT().ResetCode().Return("48213", nil).Once()
		m.userRepo.EXPECT().SetResetCode(mock.Anything, "alice@example.com", "48213").Return(nil).Once()
		m.mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything,
			mock.MatchedBy(func(text string) bool {
				return strings.Contains(text, "48213")
			}),
			mock.MatchedBy(func(html string) bool {
				return strings.Contains(html, "48213")
			}),
		).Return(nil).Once()

		err := useCase.ForgotPassword(ctx, "alice@example.com")

		assert.NoError(t, err)
	})

	t.Run("Missing email", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		err := useCase.ForgotPassword(ctx, "")

		assert.ErrorIs(t, err, errs.ErrEmailRequired)
		m.userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Unknown email", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").
			Return(nil, errs.ErrUserNotFound).Once()

		err := useCase.ForgotPassword(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, errs.ErrEmailNotFound)
		m.codes.AssertNotCalled(t, "ResetCode")
	})

	t.Run("Mailer failure after the code was stored", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(account, nil).Once()
		m.codes.EXPECT().ResetCode().Return("48213", nil).Once()
		m.userRepo.EXPECT().SetResetCode(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down")).Once()

		err := useCase.ForgotPassword(ctx, "alice@example.com")

		// The stored code stays usable even though this request failed
		assert.True(t, errs.IsKind(err, errs.KindUpstream))
	})

	t.Run("Code generation failure", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(account, nil).Once()
		m.codes.EXPECT().ResetCode().Return("", errors.New("entropy exhausted")).Once()

		err := useCase.ForgotPassword(ctx, "alice@example.com")

		assert.True(t, errs.IsKind(err, errs.KindUpstream))
		m.userRepo.AssertNotCalled(t, "SetResetCode", mock.Anything, mock.Anything, mock.Anything)
	})
}
