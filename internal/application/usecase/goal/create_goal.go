package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	AppliesTo   string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	access   *dashboard.Access
	cache    adapter.ViewCache
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, access *dashboard.Access, cache adapter.ViewCache) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		access:   access,
		cache:    cache,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	goalType := entity.GoalType(input.Type)
	appliesTo := strings.TrimSpace(input.AppliesTo)
	amount := input.Amount.Round(2)
	if err := validateGoal(goalType, amount, appliesTo); err != nil {
		return nil, err
	}

	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, input.DashboardID, goalType, amount, appliesTo)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		return nil, fmt.Errorf("failed to invalidate cached views: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
