package user

import (
	"context"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// ResetPassword redeems a reset code: the (email, code) pair must match the
// stored record, the new password must clear the minimum length, and on
// success the hash is replaced and the code blanked in one update.
func (u *UserUseCase) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	if email == "" {
		return errs.ErrResetEmailRequired
	}
	if newPassword == "" {
		return errs.ErrNewPasswordRequired
	}
	if resetCode == "" {
		return errs.ErrResetCodeRequired
	}
	if len(newPassword) < minPasswordLength {
		return errs.ErrNewPasswordTooShort
	}

	if _, err := u.userRepo.GetByEmailAndResetCode(ctx, email, resetCode); err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return errs.ErrResetCodeMismatch
		}
		return err
	}

	passwordHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		u.logger.Error("Failed to hash new password", map[string]any{
			"error": err.Error(),
		})
		return errs.Upstream("Could not reset password", err)
	}

	if err := u.userRepo.ResetPassword(ctx, email, passwordHash); err != nil {
		return err
	}

	u.logger.Info("Password reset", map[string]any{
		"email": email,
	})
	return nil
}
