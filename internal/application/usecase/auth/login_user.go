package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/profit-tracker/backend/internal/application/adapter"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// LoginUserInput represents the input for signing in.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserUseCase signs an account in with email and password.
type LoginUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	sessions  sessionOpener
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	users adapter.UserRepository,
	dashboards adapter.DashboardRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		users:     users,
		passwords: passwords,
		sessions:  sessionOpener{tokens: tokens, dashboards: dashboards},
	}
}

// Execute checks the credentials and opens a session. Unknown emails and wrong passwords
// give the same error.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*Session, error) {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwords.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	return uc.sessions.open(ctx, user)
}
