package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// RegisterUserInput represents the input for creating an account.
type RegisterUserInput struct {
	Email    string
	Username string
	Password string
}

// RegisterUserUseCase creates an account and signs it in.
type RegisterUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	sessions  sessionOpener
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	users adapter.UserRepository,
	dashboards adapter.DashboardRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		users:     users,
		passwords: passwords,
		sessions:  sessionOpener{tokens: tokens, dashboards: dashboards},
	}
}

// Execute validates the credentials, stores the account and opens its first session. The
// unique email constraint of the store decides conflicts.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*Session, error) {
	email := normalizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwords.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	hash, err := uc.passwords.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, strings.TrimSpace(input.Username), hash)
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return uc.sessions.open(ctx, user)
}
