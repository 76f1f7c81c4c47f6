package profit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// DynamicDailyTarget returns the profit still needed per remaining working day for a weekly
// or monthly goal to be met, as of referenceDate. The result is invalid (not applicable) when
// the goal is daily, an explicit daily goal exists for referenceDate, the goal has no
// resolvable period or referenceDate lies outside it. Once the goal is met the target is zero.
func DynamicDailyTarget(goal *entity.Goal, entries Entries, initial decimal.Decimal, referenceDate time.Time, allGoals []*entity.Goal) decimal.NullDecimal {
	return dynamicDailyTarget(goal, NewSeries(entries, initial), referenceDate, allGoals)
}

// DynamicDailyTarget evaluates the target against the series.
func (s *Series) DynamicDailyTarget(goal *entity.Goal, referenceDate time.Time, allGoals []*entity.Goal) decimal.NullDecimal {
	return dynamicDailyTarget(goal, s, referenceDate, allGoals)
}

func dynamicDailyTarget(goal *entity.Goal, series *Series, referenceDate time.Time, allGoals []*entity.Goal) decimal.NullDecimal {
	if goal == nil || goal.Type == entity.GoalTypeDaily {
		return decimal.NullDecimal{}
	}

	refKey := valueobject.DateKeyOf(referenceDate)
	if HasDailyGoal(allGoals, refKey) {
		return decimal.NullDecimal{}
	}

	period, ok := ResolvePeriod(goal)
	if !ok {
		return decimal.NullDecimal{}
	}

	ref := valueobject.DateOf(referenceDate)
	if !period.Contains(ref) {
		return decimal.NullDecimal{}
	}

	realized := decimal.Zero
	for d := period.Start; d.Before(ref); d = d.AddDate(0, 0, 1) {
		realized = realized.Add(series.ProfitFor(valueobject.DateKeyOf(d)))
	}

	remainingNeeded := goal.Amount.Sub(realized)
	if !remainingNeeded.IsPositive() {
		return decimal.NewNullDecimal(decimal.Zero)
	}

	remainingDays := valueobject.WorkingDays(ref, period.End, true)
	if len(remainingDays) == 0 {
		// ref is a weekend day past the period's last working day.
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(remainingNeeded.Div(decimal.NewFromInt(int64(len(remainingDays)))))
}
