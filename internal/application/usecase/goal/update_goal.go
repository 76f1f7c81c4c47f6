package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// UpdateGoalInput represents the input for goal update. Nil fields keep their current value.
type UpdateGoalInput struct {
	DashboardID uuid.UUID
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Type        *string
	Amount      *decimal.Decimal
	AppliesTo   *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	access   *dashboard.Access
	cache    adapter.ViewCache
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, access *dashboard.Access, cache adapter.ViewCache) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		access:   access,
		cache:    cache,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	goal, err := findDashboardGoal(ctx, uc.goalRepo, input.DashboardID, input.GoalID)
	if err != nil {
		return nil, err
	}

	goalType, amount, appliesTo := goal.Type, goal.Amount, goal.AppliesTo
	if input.Type != nil {
		goalType = entity.GoalType(*input.Type)
	}
	if input.Amount != nil {
		amount = input.Amount.Round(2)
	}
	if input.AppliesTo != nil {
		appliesTo = strings.TrimSpace(*input.AppliesTo)
	}

	// The fields are checked together since applies_to depends on the type.
	if err := validateGoal(goalType, amount, appliesTo); err != nil {
		return nil, err
	}

	goal.Type = goalType
	goal.Amount = amount
	goal.AppliesTo = appliesTo
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		return nil, fmt.Errorf("failed to invalidate cached views: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
