// Package auth contains account and session use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// Session is what a signed-in client needs to open the app: a token pair, the account
// and the dashboards it can pick from. Dashboards is empty for a new account.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *entity.User
	Dashboards   []*entity.Dashboard
}

// sessionOpener issues tokens for a user and loads the dashboard picker.
type sessionOpener struct {
	tokens     adapter.TokenService
	dashboards adapter.DashboardRepository
}

func (o sessionOpener) open(ctx context.Context, user *entity.User) (*Session, error) {
	pair, err := o.tokens.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	dashboards, err := o.dashboards.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}

	return &Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         user,
		Dashboards:   dashboards,
	}, nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// normalizeEmail lowercases and trims an address. Accounts are looked up by this form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
