package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type useCaseMocks struct {
	userRepo        *persistencemocks.MockUserRepository
	transactionRepo *persistencemocks.MockTransactionRepository
	tokenIssuer     *coremocks.MockTokenIssuer
	hasher          *coremocks.MockPasswordHasher
	codes           *coremocks.MockCodeGenerator
	mailer          *coremocks.MockMailer
	timeProvider    *coremocks.MockTimeProvider
	logger          *coremocks.MockLogger
}

func newUseCaseWithMocks(t *testing.T) (*UserUseCase, useCaseMocks) {
	m := useCaseMocks{
		userRepo:        persistencemocks.NewMockUserRepository(t),
		transactionRepo: persistencemocks.NewMockTransactionRepository(t),
		tokenIssuer:     coremocks.NewMockTokenIssuer(t),
		hasher:          coremocks.NewMockPasswordHasher(t),
		codes:           coremocks.NewMockCodeGenerator(t),
		mailer:          coremocks.NewMockMailer(t),
		timeProvider:    coremocks.NewMockTimeProvider(t),
		logger:          coremocks.NewMockLogger(t),
	}
	m.timeProvider.EXPECT().Now().
		Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	useCase := NewUserUseCase(
		m.userRepo, m.transactionRepo, m.tokenIssuer, m.hasher,
		m.codes, m.mailer, m.timeProvider, m.logger,
	)
	return useCase, m
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Balance:         "100.00",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("secret123").Return("$2a$12$hash", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Name == "Alice" &&
				user.Email == "alice@example.com" &&
				user.PasswordHash == "$2a$12$hash" &&
				user.BalanceCents == 10000
		})).Return(nil).Once()
		m.tokenIssuer.EXPECT().Issue(mock.Anything).Return("token-123", nil).Once()
		m.mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()

		user, token, err := useCase.Register(ctx, validRegisterInput())

		require.NoError(t, err)
		assert.Equal(t, "token-123", token)
		assert.Equal(t, "100.00", user.GetBalance())
	})

	t.Run("Empty balance defaults to zero", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.BalanceCents == 0
		})).Return(nil).Once()
		m.tokenIssuer.EXPECT().Issue(mock.Anything).Return("token-123", nil).Once()
		m.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()

		input := validRegisterInput()
		input.Balance = ""
		_, _, err := useCase.Register(ctx, input)

		assert.NoError(t, err)
	})

	t.Run("Token payload carries id and name", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		var createdID string
		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			createdID = user.ID
			return true
		})).Return(nil).Once()
		m.tokenIssuer.EXPECT().Issue(mock.MatchedBy(func(identity coreport.Identity) bool {
			return identity.ID == createdID && identity.Name == "Alice"
		})).Return("token-123", nil).Once()
		m.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()

		_, _, err := useCase.Register(ctx, validRegisterInput())

		require.NoError(t, err)
		assert.NotEmpty(t, createdID)
	})

	// Fail-fast validation chain: the first failing rule determines the
	// error even when later rules would fail too.
	t.Run("Validation order", func(t *testing.T) {
		mutate := func(fn func(*usecase.RegisterInput)) usecase.RegisterInput {
			input := validRegisterInput()
			fn(&input)
			return input
		}

		testCases := []struct {
			name        string
			input       usecase.RegisterInput
			expectedErr error
		}{
			{"Missing email", mutate(func(i *usecase.RegisterInput) { i.Email = "" }), errs.ErrEmailMustBeProvided},
			{"Missing password", mutate(func(i *usecase.RegisterInput) { i.Password = "" }), errs.ErrPasswordMustBeProvided},
			{"Short password", mutate(func(i *usecase.RegisterInput) { i.Password = "abcd"; i.ConfirmPassword = "abcd" }), errs.ErrPasswordTooShort},
			{"Confirmation mismatch", mutate(func(i *usecase.RegisterInput) { i.ConfirmPassword = "different" }), errs.ErrPasswordConfirmMismatch},
			{"Missing name", mutate(func(i *usecase.RegisterInput) { i.Name = "" }), errs.ErrNameRequired},
			{"Malformed email", mutate(func(i *usecase.RegisterInput) { i.Email = "not-an-email" }), errs.ErrInvalidEmail},
			{"Bad balance", mutate(func(i *usecase.RegisterInput) { i.Balance = "abc" }), errs.ErrAmountNotNumeric},
			{"Email missing wins over password missing", mutate(func(i *usecase.RegisterInput) { i.Email = ""; i.Password = "" }), errs.ErrEmailMustBeProvided},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				useCase, m := newUseCaseWithMocks(t)

				user, token, err := useCase.Register(ctx, tc.input)

				assert.Nil(t, user)
				assert.Empty(t, token)
				assert.ErrorIs(t, err, tc.expectedErr)
				m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Duplicate email", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		existing := &entity.User{ID: "existing", Email: "alice@example.com"}
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(existing, nil).Once()

		user, token, err := useCase.Register(ctx, validRegisterInput())

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
		m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate check store failure surfaces", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		storeErr := errs.Upstream("Database error", errors.New("connection reset"))
		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, storeErr).Once()

		_, _, err := useCase.Register(ctx, validRegisterInput())

		assert.Equal(t, storeErr, err)
	})

	t.Run("Mailer failure fails the request after the account exists", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.tokenIssuer.EXPECT().Issue(mock.Anything).Return("token-123", nil).Once()
		m.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down")).Once()

		user, token, err := useCase.Register(ctx, validRegisterInput())

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.True(t, errs.IsKind(err, errs.KindUpstream))
	})
}
