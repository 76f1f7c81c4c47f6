package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// findDashboardGoal loads a goal and checks it belongs to the dashboard. Goals of other
// dashboards are reported as not found.
func findDashboardGoal(ctx context.Context, repo adapter.GoalRepository, dashboardID, goalID uuid.UUID) (*entity.Goal, error) {
	notFound := domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)

	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if goal.DashboardID != dashboardID {
		return nil, notFound
	}
	return goal, nil
}
