package profit

import (
	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// ResolvePeriod maps a weekly or monthly goal to the calendar range it covers. Weekly goals
// span Monday to Sunday of their ISO week, monthly goals the whole month. Daily goals and
// goals whose AppliesTo cannot be parsed have no period.
func ResolvePeriod(goal *entity.Goal) (valueobject.PeriodRange, bool) {
	if goal == nil {
		return valueobject.PeriodRange{}, false
	}

	var (
		rng valueobject.PeriodRange
		err error
	)
	switch goal.Type {
	case entity.GoalTypeWeekly:
		rng, err = valueobject.WeekRange(goal.AppliesTo)
	case entity.GoalTypeMonthly:
		rng, err = valueobject.MonthRange(goal.AppliesTo)
	default:
		return valueobject.PeriodRange{}, false
	}
	if err != nil {
		return valueobject.PeriodRange{}, false
	}
	return rng, true
}

// FindGoal returns the first goal of the given type whose AppliesTo equals periodID.
func FindGoal(goals []*entity.Goal, goalType entity.GoalType, periodID string) *entity.Goal {
	for _, g := range goals {
		if g != nil && g.Type == goalType && g.AppliesTo == periodID {
			return g
		}
	}
	return nil
}

// HasDailyGoal reports whether an explicit daily goal exists for dateKey.
func HasDailyGoal(goals []*entity.Goal, dateKey string) bool {
	return FindGoal(goals, entity.GoalTypeDaily, dateKey) != nil
}
