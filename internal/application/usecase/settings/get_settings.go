// Package settings contains per-dashboard settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// GetSettingsOutput represents the output of reading settings.
type GetSettingsOutput struct {
	Settings *entity.AppSettings
}

// GetSettingsUseCase returns the dashboard settings, falling back to defaults when none
// were saved.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	access       *dashboard.Access
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository, access *dashboard.Access) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
		access:       access,
	}
}

// Execute reads the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
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

	return &GetSettingsOutput{Settings: settings}, nil
}
