package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/profit-tracker/backend/internal/application/adapter"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// RefreshSessionInput represents the input for rotating a refresh token.
type RefreshSessionInput struct {
	RefreshToken string
}

// RefreshSessionUseCase trades a refresh token for a new session. Each refresh token is
// single use.
type RefreshSessionUseCase struct {
	users    adapter.UserRepository
	tokens   adapter.TokenService
	sessions sessionOpener
}

// NewRefreshSessionUseCase creates a new RefreshSessionUseCase instance.
func NewRefreshSessionUseCase(
	users adapter.UserRepository,
	dashboards adapter.DashboardRepository,
	tokens adapter.TokenService,
) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		users:    users,
		tokens:   tokens,
		sessions: sessionOpener{tokens: tokens, dashboards: dashboards},
	}
}

// Execute revokes the presented token and opens a fresh session for its account. The
// account is reloaded so a deleted user cannot refresh.
func (uc *RefreshSessionUseCase) Execute(ctx context.Context, input RefreshSessionInput) (*Session, error) {
	claims, err := uc.tokens.ValidateRefreshToken(ctx, input.RefreshToken)
	if errors.Is(err, domainerror.ErrExpiredToken) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeExpiredToken,
			"refresh token has expired",
			domainerror.ErrExpiredToken,
		)
	}
	if err != nil {
		return nil, revokedToken()
	}

	live, err := uc.tokens.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !live {
		return nil, revokedToken()
	}

	user, err := uc.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, revokedToken()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return uc.sessions.open(ctx, user)
}

func revokedToken() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidToken,
		"invalid or revoked refresh token",
		domainerror.ErrInvalidToken,
	)
}
