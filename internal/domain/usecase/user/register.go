package user

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

const minPasswordLength = 5

// Register validates the registration form, creates the account with its
// initial balance, issues a token and sends the welcome mail. The mail is
// awaited; a mailer failure fails the request even though the account is
// already persisted.
func (u *UserUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, string, error) {
	// Fail fast, first failing rule wins
	if input.Email == "" {
		return nil, "", errs.ErrEmailMustBeProvided
	}
	if input.Password == "" {
		return nil, "", errs.ErrPasswordMustBeProvided
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", errs.ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return nil, "", errs.ErrPasswordConfirmMismatch
	}
	if input.Name == "" {
		return nil, "", errs.ErrNameRequired
	}
	if !entity.IsValidEmail(input.Email) {
		return nil, "", errs.ErrInvalidEmail
	}

	balanceCents := int64(0)
	if input.Balance != "" {
		var err error
		balanceCents, err = entity.ParseSignedAmount(input.Balance)
		if err != nil {
			return nil, "", err
		}
	}

	// Duplicate email check
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errs.IsKind(err, errs.KindNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errs.ErrEmailTaken
	}

	passwordHash, err := u.hasher.Hash(input.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, "", errs.Upstream("Could not register user", err)
	}

	user, err := entity.NewUser(input.Name, input.Email, passwordHash, balanceCents, u.timeProvider)
	if err != nil {
		return nil, "", err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokenIssuer.Issue(coreIdentity(user))
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, "", errs.Upstream("Could not register user", err)
	}

	if err := u.sendWelcomeMail(ctx, user); err != nil {
		u.logger.Error("Failed to send welcome email", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, "", errs.Upstream("Could not send welcome email", err)
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return user, token, nil
}

func (u *UserUseCase) sendWelcomeMail(ctx context.Context, user *entity.User) error {
	return u.mailer.Send(ctx,
		user.Email,
		"Welcome to Expense Tracker!",
		"Hello "+user.Name+", your account was created successfully.",
		"<h1> Hello "+user.Name+", your account was created successfully. </h1>",
	)
}
