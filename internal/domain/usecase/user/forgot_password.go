package user

import (
	"context"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// ForgotPassword generates a numeric reset code, stores it on the account
// and emails it. The code has no expiry; it is single-use only because a
// successful reset blanks it.
func (u *UserUseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return errs.ErrEmailRequired
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return errs.ErrEmailNotFound
		}
		return err
	}

	code, err := u.codes.ResetCode()
	if err != nil {
		u.logger.Error("Failed to generate reset code", map[string]any{
			"error": err.Error(),
		})
		return errs.Upstream("Could not generate reset code", err)
	}

	if err := u.userRepo.SetResetCode(ctx, email, code); err != nil {
		return err
	}

	if err := u.mailer.Send(ctx,
		email,
		"Reset your password - Expense Tracker",
		"Your password reset code is "+code,
		"<h1> Your password reset code is "+code+" </h1>",
	); err != nil {
		u.logger.Error("Failed to send reset code email", map[string]any{
			"error": err.Error(),
		})
		return errs.Upstream("Could not send reset code email", err)
	}

	u.logger.Info("Reset code sent", map[string]any{
		"email": email,
	})
	return nil
}
