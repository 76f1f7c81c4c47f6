// Package goal contains goal-related use cases.
package goal

import (
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// validateGoal checks the type, the amount and that appliesTo identifies a real day, ISO
// week or month matching the type. Amounts are stored with two decimals, so anything
// below one cent is rejected.
func validateGoal(goalType entity.GoalType, amount decimal.Decimal, appliesTo string) error {
	if !goalType.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be: daily, weekly, or monthly",
			domainerror.ErrInvalidGoalType,
		)
	}

	if rounded := amount.Round(2); !rounded.IsPositive() || rounded.GreaterThan(entity.MaxAmount) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amount must be between 0.01 and "+entity.MaxAmount.StringFixed(2),
			domainerror.ErrInvalidGoalAmount,
		)
	}

	var err error
	switch goalType {
	case entity.GoalTypeDaily:
		_, err = valueobject.ParseDateKey(appliesTo)
	case entity.GoalTypeWeekly:
		_, _, err = valueobject.ParseWeekID(appliesTo)
	case entity.GoalTypeMonthly:
		_, _, err = valueobject.ParseMonthID(appliesTo)
	}
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAppliesTo,
			appliesToHint(goalType),
			domainerror.ErrInvalidAppliesTo,
		)
	}
	return nil
}

func appliesToHint(goalType entity.GoalType) string {
	switch goalType {
	case entity.GoalTypeDaily:
		return "invalid applies_to for daily goal, expected YYYY-MM-DD"
	case entity.GoalTypeWeekly:
		return "invalid applies_to for weekly goal, expected YYYY-Www"
	default:
		return "invalid applies_to for monthly goal, expected YYYY-MM"
	}
}
