package profit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// GoalProgress compares realized profit with a goal amount.
type GoalProgress struct {
	Current    decimal.Decimal
	Goal       decimal.Decimal
	Percentage decimal.Decimal
}

// NewGoalProgress computes the percentage of amount reached by current, rounded to two places.
func NewGoalProgress(current, amount decimal.Decimal) *GoalProgress {
	pct := decimal.Zero
	if !amount.IsZero() {
		pct = current.Div(amount).Mul(hundred).Round(2)
	}
	return &GoalProgress{Current: current, Goal: amount, Percentage: pct}
}

// IsMet reports whether the goal has been reached.
func (p *GoalProgress) IsMet() bool {
	return p.Current.GreaterThanOrEqual(p.Goal)
}

// PeriodSummary aggregates the entries recorded within a period.
type PeriodSummary struct {
	TotalProfit  decimal.Decimal
	EntryCount   int
	GoalProgress *GoalProgress
}

// SummarizePeriod sums the profit of every recorded day in rng. GoalProgress is set only when
// goal is not nil.
func SummarizePeriod(rng valueobject.PeriodRange, entries Entries, initial decimal.Decimal, goal *entity.Goal) PeriodSummary {
	return NewSeries(entries, initial).Summarize(rng, goal)
}

// Summarize is SummarizePeriod over the series.
func (s *Series) Summarize(rng valueobject.PeriodRange, goal *entity.Goal) PeriodSummary {
	summary := PeriodSummary{TotalProfit: decimal.Zero}

	startKey := valueobject.DateKeyOf(rng.Start)
	endKey := valueobject.DateKeyOf(rng.End)
	for _, key := range s.keys {
		if key < startKey {
			continue
		}
		if key > endKey {
			break
		}
		summary.TotalProfit = summary.TotalProfit.Add(s.ProfitFor(key))
		summary.EntryCount++
	}

	if goal != nil {
		summary.GoalProgress = NewGoalProgress(summary.TotalProfit, goal.Amount)
	}
	return summary
}

// DayResult is the per-day output consumed by calendar and report views.
type DayResult struct {
	DateKey                    string
	Profit                     decimal.Decimal
	EntryExists                bool
	DynamicDailyTargetForWeek  decimal.NullDecimal
	DynamicDailyTargetForMonth decimal.NullDecimal
}

// ResultForDay computes the profit of day and the dynamic targets of the weekly and monthly
// goals covering it. Targets are omitted when an explicit daily goal exists for the day.
func (s *Series) ResultForDay(day time.Time, goals []*entity.Goal) DayResult {
	key := valueobject.DateKeyOf(day)
	_, exists := s.entries[key]

	result := DayResult{
		DateKey:     key,
		Profit:      s.ProfitFor(key),
		EntryExists: exists,
	}
	if HasDailyGoal(goals, key) {
		return result
	}

	if weekly := FindGoal(goals, entity.GoalTypeWeekly, valueobject.WeekIDOf(day)); weekly != nil {
		result.DynamicDailyTargetForWeek = s.DynamicDailyTarget(weekly, day, goals)
	}
	if monthly := FindGoal(goals, entity.GoalTypeMonthly, valueobject.MonthIDOf(day)); monthly != nil {
		result.DynamicDailyTargetForMonth = s.DynamicDailyTarget(monthly, day, goals)
	}
	return result
}
