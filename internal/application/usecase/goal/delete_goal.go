package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	DashboardID uuid.UUID
	GoalID      uuid.UUID
	UserID      uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	access   *dashboard.Access
	cache    adapter.ViewCache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, access *dashboard.Access, cache adapter.ViewCache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		access:   access,
		cache:    cache,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return err
	}

	if _, err := findDashboardGoal(ctx, uc.goalRepo, input.DashboardID, input.GoalID); err != nil {
		return err
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		return fmt.Errorf("failed to invalidate cached views: %w", err)
	}
	return nil
}
