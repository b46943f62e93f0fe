package user

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// Login verifies credentials and issues a token. Unknown email and wrong
// password both render as a generic 400, though the message text still
// differs between the two cases (kept from the original behavior).
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, "", errs.ErrEmailNotFound
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Warn("Login with wrong password", map[string]any{
			"user_id": user.ID,
		})
		return nil, "", errs.ErrCredentialMismatch
	}

	token, err := u.tokenIssuer.Issue(coreIdentity(user))
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, "", errs.Upstream("Could not log in", err)
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})
	return user, token, nil
}
