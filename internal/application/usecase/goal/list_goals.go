package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles listing the goals of a dashboard.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	access   *dashboard.Access
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, access *dashboard.Access) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		access:   access,
	}
}

// Execute lists the goals ordered by applies_to.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.FindByDashboardID(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []*entity.Goal{}
	}
	return &ListGoalsOutput{Goals: goals}, nil
}
