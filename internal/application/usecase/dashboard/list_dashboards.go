package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// ListDashboardsInput represents the input for listing dashboards.
type ListDashboardsInput struct {
	UserID uuid.UUID
}

// ListDashboardsOutput represents the output of listing dashboards.
type ListDashboardsOutput struct {
	Dashboards []*entity.Dashboard
}

// ListDashboardsUseCase handles listing the dashboards of a user.
type ListDashboardsUseCase struct {
	dashboardRepo adapter.DashboardRepository
}

// NewListDashboardsUseCase creates a new ListDashboardsUseCase instance.
func NewListDashboardsUseCase(dashboardRepo adapter.DashboardRepository) *ListDashboardsUseCase {
	return &ListDashboardsUseCase{dashboardRepo: dashboardRepo}
}

// Execute lists the user's dashboards, oldest first.
func (uc *ListDashboardsUseCase) Execute(ctx context.Context, input ListDashboardsInput) (*ListDashboardsOutput, error) {
	dashboards, err := uc.dashboardRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	if dashboards == nil {
		dashboards = []*entity.Dashboard{}
	}
	return &ListDashboardsOutput{Dashboards: dashboards}, nil
}
