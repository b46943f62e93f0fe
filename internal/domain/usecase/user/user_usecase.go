package user

import (
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// UserUseCase implements registration, login, dashboard and the password
// reset flow
type UserUseCase struct {
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	tokenIssuer     coreport.TokenIssuer
	hasher          coreport.PasswordHasher
	codes           coreport.CodeGenerator
	mailer          coreport.Mailer
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	tokenIssuer coreport.TokenIssuer,
	hasher coreport.PasswordHasher,
	codes coreport.CodeGenerator,
	mailer coreport.Mailer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		tokenIssuer:     tokenIssuer,
		hasher:          hasher,
		codes:           codes,
		mailer:          mailer,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Ensure UserUseCase satisfies the usecase port
var _ usecase.UserUseCase = (*UserUseCase)(nil)

// coreIdentity is the token payload for a user: id and name only
func coreIdentity(user *entity.User) coreport.Identity {
	return coreport.Identity{ID: user.ID, Name: user.Name}
}
