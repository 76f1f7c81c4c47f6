package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGetSettings_DefaultsWhenUnset(t *testing.T) {
	store := usecasetest.NewStore()
	owner := uuid.New()
	d := store.SeedDashboard(owner, "Main")
	uc := NewGetSettingsUseCase(store.Settings(), dashboard.NewAccess(store.Dashboards()))

	out, err := uc.Execute(context.Background(), GetSettingsInput{DashboardID: d.ID, UserID: owner})
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyBRL, out.Settings.Currency)
	assert.False(t, out.Settings.EnableNotifications)
	assert.Equal(t, "18:00", out.Settings.NotificationTime)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	cache := usecasetest.NewCache()
	owner := uuid.New()
	d := store.SeedDashboard(owner, "Main")
	access := dashboard.NewAccess(store.Dashboards())
	uc := NewUpdateSettingsUseCase(store.Settings(), access, cache)

	out, err := uc.Execute(ctx, UpdateSettingsInput{
		DashboardID:         d.ID,
		UserID:              owner,
		Currency:            strPtr("USD"),
		EnableNotifications: boolPtr(true),
		NotificationTime:    strPtr("07:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyUSD, out.Settings.Currency)
	assert.Equal(t, 1, cache.Invalidations[d.ID])

	// Partial update keeps the other fields.
	out, err = uc.Execute(ctx, UpdateSettingsInput{DashboardID: d.ID, UserID: owner, EnableNotifications: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyUSD, out.Settings.Currency)
	assert.Equal(t, "07:30", out.Settings.NotificationTime)
	assert.False(t, out.Settings.EnableNotifications)

	got, err := NewGetSettingsUseCase(store.Settings(), access).Execute(ctx, GetSettingsInput{DashboardID: d.ID, UserID: owner})
	require.NoError(t, err)
	assert.Equal(t, "07:30", got.Settings.NotificationTime)

	tests := []struct {
		name  string
		input UpdateSettingsInput
		code  domainerror.DashboardErrorCode
	}{
		{"unknown currency", UpdateSettingsInput{Currency: strPtr("GBP")}, domainerror.ErrCodeInvalidCurrency},
		{"bad time", UpdateSettingsInput{NotificationTime: strPtr("25:00")}, domainerror.ErrCodeInvalidNotificationTime},
		{"unpadded time", UpdateSettingsInput{NotificationTime: strPtr("7:30")}, domainerror.ErrCodeInvalidNotificationTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.DashboardID = d.ID
			tt.input.UserID = owner
			_, err := uc.Execute(ctx, tt.input)
			var dashErr *domainerror.DashboardError
			require.True(t, errors.As(err, &dashErr))
			assert.Equal(t, tt.code, dashErr.Code)
		})
	}

	t.Run("other users are denied", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateSettingsInput{DashboardID: d.ID, UserID: uuid.New()})
		assert.ErrorIs(t, err, domainerror.ErrDashboardAccessDenied)
	})
}
