package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

func TestValidateGoal(t *testing.T) {
	tests := []struct {
		name      string
		goalType  entity.GoalType
		amount    string
		appliesTo string
		want      error
	}{
		{"daily", entity.GoalTypeDaily, "50", "2024-03-04", nil},
		{"weekly", entity.GoalTypeWeekly, "200", "2024-W10", nil},
		{"week 53 of a long year", entity.GoalTypeWeekly, "200", "2020-W53", nil},
		{"monthly", entity.GoalTypeMonthly, "500", "2024-03", nil},
		{"unknown type", entity.GoalType("yearly"), "500", "2024", domainerror.ErrInvalidGoalType},
		{"zero amount", entity.GoalTypeMonthly, "0", "2024-03", domainerror.ErrInvalidGoalAmount},
		{"negative amount", entity.GoalTypeMonthly, "-10", "2024-03", domainerror.ErrInvalidGoalAmount},
		{"below one cent", entity.GoalTypeMonthly, "0.004", "2024-03", domainerror.ErrInvalidGoalAmount},
		{"one cent", entity.GoalTypeMonthly, "0.01", "2024-03", nil},
		{"largest storable amount", entity.GoalTypeMonthly, "9999999999999.99", "2024-03", nil},
		{"past the column limit", entity.GoalTypeMonthly, "10000000000000", "2024-03", domainerror.ErrInvalidGoalAmount},
		{"daily with month id", entity.GoalTypeDaily, "50", "2024-03", domainerror.ErrInvalidAppliesTo},
		{"weekly with single digit", entity.GoalTypeWeekly, "50", "2024-W1", domainerror.ErrInvalidAppliesTo},
		{"week 53 of a short year", entity.GoalTypeWeekly, "50", "2024-W53", domainerror.ErrInvalidAppliesTo},
		{"monthly with week id", entity.GoalTypeMonthly, "50", "2024-W10", domainerror.ErrInvalidAppliesTo},
		{"month 13", entity.GoalTypeMonthly, "50", "2024-13", domainerror.ErrInvalidAppliesTo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGoal(tt.goalType, decimal.RequireFromString(tt.amount), tt.appliesTo)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGoalLifecycle(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	cache := usecasetest.NewCache()
	owner := uuid.New()
	d := store.SeedDashboard(owner, "Main")
	other := store.SeedDashboard(owner, "Other")
	access := dashboard.NewAccess(store.Dashboards())

	created, err := NewCreateGoalUseCase(store.Goals(), access, cache).Execute(ctx, CreateGoalInput{
		DashboardID: d.ID,
		UserID:      owner,
		Type:        "weekly",
		Amount:      decimal.NewFromInt(200),
		AppliesTo:   "2024-W10",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalTypeWeekly, created.Goal.Type)
	assert.Equal(t, 1, cache.Invalidations[d.ID])

	update := NewUpdateGoalUseCase(store.Goals(), access, cache)
	amount := decimal.NewFromInt(300)
	updated, err := update.Execute(ctx, UpdateGoalInput{DashboardID: d.ID, GoalID: created.Goal.ID, UserID: owner, Amount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.Goal.Amount.Equal(amount))
	assert.Equal(t, "2024-W10", updated.Goal.AppliesTo)

	t.Run("changing the type revalidates applies_to", func(t *testing.T) {
		monthly := "monthly"
		_, err := update.Execute(ctx, UpdateGoalInput{DashboardID: d.ID, GoalID: created.Goal.ID, UserID: owner, Type: &monthly})
		assert.ErrorIs(t, err, domainerror.ErrInvalidAppliesTo)
	})

	t.Run("sub-cent amounts are rejected", func(t *testing.T) {
		_, err := NewCreateGoalUseCase(store.Goals(), access, cache).Execute(ctx, CreateGoalInput{
			DashboardID: d.ID,
			UserID:      owner,
			Type:        "monthly",
			Amount:      decimal.RequireFromString("0.004"),
			AppliesTo:   "2024-03",
		})
		assert.ErrorIs(t, err, domainerror.ErrInvalidGoalAmount)

		tiny := decimal.RequireFromString("0.001")
		_, err = update.Execute(ctx, UpdateGoalInput{DashboardID: d.ID, GoalID: created.Goal.ID, UserID: owner, Amount: &tiny})
		assert.ErrorIs(t, err, domainerror.ErrInvalidGoalAmount)
	})

	t.Run("goal of another dashboard is not found", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateGoalInput{DashboardID: other.ID, GoalID: created.Goal.ID, UserID: owner, Amount: &amount})
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	})

	list, err := NewListGoalsUseCase(store.Goals(), access).Execute(ctx, ListGoalsInput{DashboardID: d.ID, UserID: owner})
	require.NoError(t, err)
	assert.Len(t, list.Goals, 1)

	del := NewDeleteGoalUseCase(store.Goals(), access, cache)
	require.NoError(t, del.Execute(ctx, DeleteGoalInput{DashboardID: d.ID, GoalID: created.Goal.ID, UserID: owner}))
	assert.ErrorIs(t, del.Execute(ctx, DeleteGoalInput{DashboardID: d.ID, GoalID: created.Goal.ID, UserID: owner}), domainerror.ErrGoalNotFound)

	list, err = NewListGoalsUseCase(store.Goals(), access).Execute(ctx, ListGoalsInput{DashboardID: d.ID, UserID: owner})
	require.NoError(t, err)
	assert.Empty(t, list.Goals)
}
