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

// GetPeriodSummaryInput represents the input for a weekly or monthly summary.
type GetPeriodSummaryInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Type        string // weekly or monthly
	AppliesTo   string // YYYY-Www or YYYY-MM, defaults to the current period
}

// GetPeriodSummaryOutput represents a period summary.
type GetPeriodSummaryOutput struct {
	Type      entity.GoalType
	AppliesTo string
	Range     valueobject.PeriodRange
	Summary   profit.PeriodSummary
	// DynamicDailyTarget is what remains to be made per working day from today on to meet
	// the period goal. Null when there is no goal or today is outside the period.
	DynamicDailyTarget decimal.NullDecimal
}

// GetPeriodSummaryUseCase summarizes the profit of an ISO week or a month against its goal.
type GetPeriodSummaryUseCase struct {
	loader *SnapshotLoader
	clock  adapter.Clock
}

// NewGetPeriodSummaryUseCase creates a new GetPeriodSummaryUseCase instance.
func NewGetPeriodSummaryUseCase(loader *SnapshotLoader, clock adapter.Clock) *GetPeriodSummaryUseCase {
	return &GetPeriodSummaryUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute computes the summary.
func (uc *GetPeriodSummaryUseCase) Execute(ctx context.Context, input GetPeriodSummaryInput) (*GetPeriodSummaryOutput, error) {
	now := uc.clock.Now()
	periodType := entity.GoalType(input.Type)

	var rng valueobject.PeriodRange
	var err error
	appliesTo := input.AppliesTo
	switch periodType {
	case entity.GoalTypeWeekly:
		if appliesTo == "" {
			appliesTo = valueobject.WeekIDOf(now)
		}
		rng, err = valueobject.WeekRange(appliesTo)
	case entity.GoalTypeMonthly:
		if appliesTo == "" {
			appliesTo = valueobject.MonthIDOf(now)
		}
		rng, err = valueobject.MonthRange(appliesTo)
	default:
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidPeriodType,
			"period type must be: weekly or monthly",
			domainerror.ErrInvalidPeriodType,
		)
	}
	if err != nil {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidPeriodID,
			"invalid period identifier for the period type",
			domainerror.ErrInvalidPeriodID,
		)
	}

	snapshot, err := uc.loader.Load(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}

	goal := profit.FindGoal(snapshot.Goals, periodType, appliesTo)
	return &GetPeriodSummaryOutput{
		Type:               periodType,
		AppliesTo:          appliesTo,
		Range:              rng,
		Summary:            snapshot.Series.Summarize(rng, goal),
		DynamicDailyTarget: snapshot.Series.DynamicDailyTarget(goal, now, snapshot.Goals),
	}, nil
}
