package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for updating settings. Nil fields keep their
// current value.
type UpdateSettingsInput struct {
	DashboardID         uuid.UUID
	UserID              uuid.UUID
	Currency            *string
	EnableNotifications *bool
	NotificationTime    *string
}

// UpdateSettingsOutput represents the output of updating settings.
type UpdateSettingsOutput struct {
	Settings *entity.AppSettings
}

// UpdateSettingsUseCase handles settings updates.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	access       *dashboard.Access
	cache        adapter.ViewCache
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, access *dashboard.Access, cache adapter.ViewCache) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		access:       access,
		cache:        cache,
	}
}

// Execute validates and stores the settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.FindByDashboardID(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultAppSettings(input.UserID, input.DashboardID)
	}

	if input.Currency != nil {
		currency := entity.Currency(*input.Currency)
		if !currency.IsValid() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidCurrency,
				"currency must be one of: BRL, USD, EUR",
				domainerror.ErrInvalidCurrency,
			)
		}
		settings.Currency = currency
	}

	if input.EnableNotifications != nil {
		settings.EnableNotifications = *input.EnableNotifications
	}

	if input.NotificationTime != nil {
		if !isValidClock(*input.NotificationTime) {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidNotificationTime,
				"notification time must be in HH:MM format",
				domainerror.ErrInvalidNotificationTime,
			)
		}
		settings.NotificationTime = *input.NotificationTime
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := uc.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	// Export formatting depends on the currency.
	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		return nil, fmt.Errorf("failed to invalidate cached views: %w", err)
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}

// isValidClock accepts zero-padded 24h HH:MM values.
func isValidClock(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
