package tracker

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// GetDayInput represents the input for a single day's result.
type GetDayInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	DateKey     string
}

// GetDayOutput represents a single day's result.
type GetDayOutput struct {
	Result          profit.DayResult
	Entry           *entity.DailyEntry
	DailyGoal       *profit.GoalProgress
	PreviousBalance decimal.Decimal
	Currency        entity.Currency
	IsFuture        bool
}

// GetDayUseCase computes the profit and dynamic targets of one day.
type GetDayUseCase struct {
	loader *SnapshotLoader
	clock  adapter.Clock
}

// NewGetDayUseCase creates a new GetDayUseCase instance.
func NewGetDayUseCase(loader *SnapshotLoader, clock adapter.Clock) *GetDayUseCase {
	return &GetDayUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute computes the day result.
func (uc *GetDayUseCase) Execute(ctx context.Context, input GetDayInput) (*GetDayOutput, error) {
	day, err := valueobject.ParseDateKey(input.DateKey)
	if err != nil {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidDay,
			"invalid date, expected YYYY-MM-DD",
			domainerror.ErrInvalidDay,
		)
	}

	snapshot, err := uc.loader.Load(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &GetDayOutput{
		Result:          snapshot.Series.ResultForDay(day, snapshot.Goals),
		PreviousBalance: snapshot.Series.BalanceBefore(input.DateKey),
		Currency:        snapshot.Currency,
		IsFuture:        input.DateKey > valueobject.DateKeyOf(uc.clock.Now()),
	}
	if entry, ok := snapshot.Series.Entry(input.DateKey); ok {
		output.Entry = &entry
	}
	if goal := profit.FindGoal(snapshot.Goals, entity.GoalTypeDaily, input.DateKey); goal != nil {
		output.DailyGoal = profit.NewGoalProgress(output.Result.Profit, goal.Amount)
	}
	return output, nil
}
