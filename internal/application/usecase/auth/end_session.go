package auth

import (
	"context"
	"fmt"

	"github.com/profit-tracker/backend/internal/application/adapter"
)

// EndSessionInput represents the input for signing out. AllDevices also revokes every
// other refresh token of the account.
type EndSessionInput struct {
	RefreshToken string
	AllDevices   bool
}

// EndSessionUseCase signs a client out.
type EndSessionUseCase struct {
	tokens adapter.TokenService
}

// NewEndSessionUseCase creates a new EndSessionUseCase instance.
func NewEndSessionUseCase(tokens adapter.TokenService) *EndSessionUseCase {
	return &EndSessionUseCase{tokens: tokens}
}

// Execute revokes the refresh token. Signing out is idempotent: an unknown or already
// revoked token is not an error.
func (uc *EndSessionUseCase) Execute(ctx context.Context, input EndSessionInput) error {
	if input.AllDevices {
		claims, err := uc.tokens.ValidateRefreshToken(ctx, input.RefreshToken)
		if err == nil {
			if err := uc.tokens.RevokeAllRefreshTokens(ctx, claims.UserID); err != nil {
				return fmt.Errorf("failed to revoke sessions: %w", err)
			}
			return nil
		}
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
