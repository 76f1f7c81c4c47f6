package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

type plainPasswords struct{}

func (plainPasswords) HashPassword(password string) (string, error) { return "hash:" + password, nil }

func (plainPasswords) VerifyPassword(hashed, password string) error {
	if hashed != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type memoryTokens struct {
	issued  map[string]adapter.TokenClaims
	revoked map[string]bool
	expired map[string]bool
}

func newMemoryTokens() *memoryTokens {
	return &memoryTokens{
		issued:  map[string]adapter.TokenClaims{},
		revoked: map[string]bool{},
		expired: map[string]bool{},
	}
}

func (m *memoryTokens) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	refresh := "refresh-" + uuid.NewString()
	m.issued[refresh] = adapter.TokenClaims{UserID: userID, Email: email, ExpiresAt: time.Now().Add(time.Hour)}
	return &adapter.TokenPair{AccessToken: "access-" + uuid.NewString(), RefreshToken: refresh, ExpiresIn: 15 * time.Minute}, nil
}

func (m *memoryTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (m *memoryTokens) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := m.issued[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	if m.expired[token] {
		return nil, fmt.Errorf("%w: token is expired", domainerror.ErrExpiredToken)
	}
	return &claims, nil
}

func (m *memoryTokens) InvalidateRefreshToken(_ context.Context, token string) error {
	m.revoked[token] = true
	return nil
}

func (m *memoryTokens) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !m.revoked[token], nil
}

func (m *memoryTokens) RevokeAllRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for token, claims := range m.issued {
		if claims.UserID == userID {
			m.revoked[token] = true
		}
	}
	return nil
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

func TestRegisterLoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	tokens := newMemoryTokens()

	register := NewRegisterUserUseCase(store.Users(), store.Dashboards(), plainPasswords{}, tokens)
	out, err := register.Execute(ctx, RegisterUserInput{Email: " Trader@Example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "trader@example.com", out.User.Email)
	assert.Equal(t, "trader", out.User.Username, "username defaults to the email prefix")
	assert.NotEmpty(t, out.AccessToken)
	assert.Empty(t, out.Dashboards)

	_, err = register.Execute(ctx, RegisterUserInput{Email: "TRADER@example.com", Password: "secret"})
	assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))

	_, err = register.Execute(ctx, RegisterUserInput{Email: "not-an-email", Password: "secret"})
	assert.Equal(t, domainerror.ErrCodeInvalidEmail, authCode(t, err))

	_, err = register.Execute(ctx, RegisterUserInput{Email: "new@example.com", Password: "123"})
	assert.Equal(t, domainerror.ErrCodeWeakPassword, authCode(t, err))

	primary := entity.NewDashboard(out.User.ID, "Main")
	require.NoError(t, store.Dashboards().Create(ctx, primary))
	require.NoError(t, store.Dashboards().Create(ctx, entity.NewDashboard(uuid.New(), "Someone else's")))

	login := NewLoginUserUseCase(store.Users(), store.Dashboards(), plainPasswords{}, tokens)
	session, err := login.Execute(ctx, LoginUserInput{Email: "TRADER@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, session.User.ID)
	require.Len(t, session.Dashboards, 1)
	assert.Equal(t, primary.ID, session.Dashboards[0].ID)

	_, err = login.Execute(ctx, LoginUserInput{Email: "trader@example.com", Password: "wrong!"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	_, err = login.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "secret"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	refresh := NewRefreshSessionUseCase(store.Users(), store.Dashboards(), tokens)
	rotated, err := refresh.Execute(ctx, RefreshSessionInput{RefreshToken: session.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, out.User.ID, rotated.User.ID)
	assert.Len(t, rotated.Dashboards, 1)

	// The rotated-out token cannot be reused.
	_, err = refresh.Execute(ctx, RefreshSessionInput{RefreshToken: session.RefreshToken})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))

	require.NoError(t, NewEndSessionUseCase(tokens).Execute(ctx, EndSessionInput{RefreshToken: rotated.RefreshToken}))
	_, err = refresh.Execute(ctx, RefreshSessionInput{RefreshToken: rotated.RefreshToken})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))

	t.Run("signing out twice is fine", func(t *testing.T) {
		assert.NoError(t, NewEndSessionUseCase(tokens).Execute(ctx, EndSessionInput{RefreshToken: rotated.RefreshToken}))
		assert.NoError(t, NewEndSessionUseCase(tokens).Execute(ctx, EndSessionInput{RefreshToken: "unknown", AllDevices: true}))
	})
}

func TestRefreshSession_Rejections(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	tokens := newMemoryTokens()
	refresh := NewRefreshSessionUseCase(store.Users(), store.Dashboards(), tokens)

	t.Run("expired token", func(t *testing.T) {
		user := entity.NewUser("old@example.com", "old", "hash:secret")
		require.NoError(t, store.Users().Create(ctx, user))
		pair, err := tokens.GenerateTokenPair(ctx, user.ID, user.Email)
		require.NoError(t, err)
		tokens.expired[pair.RefreshToken] = true

		_, err = refresh.Execute(ctx, RefreshSessionInput{RefreshToken: pair.RefreshToken})
		assert.Equal(t, domainerror.ErrCodeExpiredToken, authCode(t, err))
	})

	t.Run("account no longer exists", func(t *testing.T) {
		pair, err := tokens.GenerateTokenPair(ctx, uuid.New(), "gone@example.com")
		require.NoError(t, err)

		_, err = refresh.Execute(ctx, RefreshSessionInput{RefreshToken: pair.RefreshToken})
		assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
		assert.False(t, tokens.revoked[pair.RefreshToken], "a rejected token is not consumed")
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := refresh.Execute(ctx, RefreshSessionInput{RefreshToken: "nope"})
		assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
	})
}

func TestEndSession_AllDevices(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	tokens := newMemoryTokens()

	register := NewRegisterUserUseCase(store.Users(), store.Dashboards(), plainPasswords{}, tokens)
	laptop, err := register.Execute(ctx, RegisterUserInput{Email: "trader@example.com", Password: "secret"})
	require.NoError(t, err)
	phone, err := NewLoginUserUseCase(store.Users(), store.Dashboards(), plainPasswords{}, tokens).
		Execute(ctx, LoginUserInput{Email: "trader@example.com", Password: "secret"})
	require.NoError(t, err)
	other, err := register.Execute(ctx, RegisterUserInput{Email: "other@example.com", Password: "secret"})
	require.NoError(t, err)

	end := NewEndSessionUseCase(tokens)
	require.NoError(t, end.Execute(ctx, EndSessionInput{RefreshToken: phone.RefreshToken, AllDevices: true}))

	refresh := NewRefreshSessionUseCase(store.Users(), store.Dashboards(), tokens)
	_, err = refresh.Execute(ctx, RefreshSessionInput{RefreshToken: laptop.RefreshToken})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err), "other devices are signed out too")

	_, err = refresh.Execute(ctx, RefreshSessionInput{RefreshToken: other.RefreshToken})
	assert.NoError(t, err, "other accounts keep their sessions")
}
