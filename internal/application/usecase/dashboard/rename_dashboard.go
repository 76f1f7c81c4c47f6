package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// RenameDashboardInput represents the input for renaming a dashboard.
type RenameDashboardInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Name        string
}

// RenameDashboardOutput represents the output of renaming a dashboard.
type RenameDashboardOutput struct {
	Dashboard *entity.Dashboard
}

// RenameDashboardUseCase handles dashboard rename logic.
type RenameDashboardUseCase struct {
	dashboardRepo adapter.DashboardRepository
	access        *Access
}

// NewRenameDashboardUseCase creates a new RenameDashboardUseCase instance.
func NewRenameDashboardUseCase(dashboardRepo adapter.DashboardRepository, access *Access) *RenameDashboardUseCase {
	return &RenameDashboardUseCase{
		dashboardRepo: dashboardRepo,
		access:        access,
	}
}

// Execute performs the rename.
func (uc *RenameDashboardUseCase) Execute(ctx context.Context, input RenameDashboardInput) (*RenameDashboardOutput, error) {
	dashboard, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}

	name, err := validateName(ctx, uc.dashboardRepo, input.UserID, input.Name, dashboard.ID)
	if err != nil {
		return nil, err
	}

	dashboard.Name = name
	dashboard.UpdatedAt = time.Now().UTC()
	if err := uc.dashboardRepo.Update(ctx, dashboard); err != nil {
		return nil, fmt.Errorf("failed to update dashboard: %w", err)
	}

	return &RenameDashboardOutput{Dashboard: dashboard}, nil
}
