package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// GetDashboardInput represents the input for fetching a dashboard.
type GetDashboardInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// GetDashboardOutput represents the output of fetching a dashboard.
type GetDashboardOutput struct {
	Dashboard *entity.Dashboard
}

// GetDashboardUseCase handles fetching a single dashboard.
type GetDashboardUseCase struct {
	access *Access
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(access *Access) *GetDashboardUseCase {
	return &GetDashboardUseCase{access: access}
}

// Execute fetches the dashboard if the user owns it.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	dashboard, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetDashboardOutput{Dashboard: dashboard}, nil
}
