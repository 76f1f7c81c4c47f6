package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// CreateDashboardInput represents the input for dashboard creation.
type CreateDashboardInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateDashboardOutput represents the output of dashboard creation.
type CreateDashboardOutput struct {
	Dashboard *entity.Dashboard
}

// CreateDashboardUseCase handles dashboard creation logic.
type CreateDashboardUseCase struct {
	dashboardRepo adapter.DashboardRepository
}

// NewCreateDashboardUseCase creates a new CreateDashboardUseCase instance.
func NewCreateDashboardUseCase(dashboardRepo adapter.DashboardRepository) *CreateDashboardUseCase {
	return &CreateDashboardUseCase{dashboardRepo: dashboardRepo}
}

// Execute performs the dashboard creation.
func (uc *CreateDashboardUseCase) Execute(ctx context.Context, input CreateDashboardInput) (*CreateDashboardOutput, error) {
	name, err := validateName(ctx, uc.dashboardRepo, input.UserID, input.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	dashboard := entity.NewDashboard(input.UserID, name)
	if err := uc.dashboardRepo.Create(ctx, dashboard); err != nil {
		return nil, fmt.Errorf("failed to create dashboard: %w", err)
	}

	return &CreateDashboardOutput{Dashboard: dashboard}, nil
}
