package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		goal      *entity.Goal
		wantOK    bool
		wantStart string
		wantEnd   string
	}{
		{"daily goals have no period", goal(entity.GoalTypeDaily, 10, "2024-03-05"), false, "", ""},
		{"monthly", goal(entity.GoalTypeMonthly, 10, "2024-02"), true, "2024-02-01", "2024-02-29"},
		{"weekly", goal(entity.GoalTypeWeekly, 10, "2024-W10"), true, "2024-03-04", "2024-03-10"},
		{"week one starting in december", goal(entity.GoalTypeWeekly, 10, "2025-W01"), true, "2024-12-30", "2025-01-05"},
		{"week 53 ending in january", goal(entity.GoalTypeWeekly, 10, "2020-W53"), true, "2020-12-28", "2021-01-03"},
		{"malformed weekly", goal(entity.GoalTypeWeekly, 10, "2024-10"), false, "", ""},
		{"nonexistent week", goal(entity.GoalTypeWeekly, 10, "2024-W53"), false, "", ""},
		{"malformed monthly", goal(entity.GoalTypeMonthly, 10, "2024-13"), false, "", ""},
		{"nil goal", nil, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, ok := ResolvePeriod(tt.goal)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, day(tt.wantStart), rng.Start)
			assert.Equal(t, valueobject.EndOfDay(day(tt.wantEnd)), rng.End)
		})
	}
}

func TestFindGoal_ReturnsFirstMatch(t *testing.T) {
	first := goal(entity.GoalTypeMonthly, 100, "2024-03")
	second := goal(entity.GoalTypeMonthly, 200, "2024-03")
	goals := []*entity.Goal{goal(entity.GoalTypeWeekly, 5, "2024-03"), first, second}

	assert.Same(t, first, FindGoal(goals, entity.GoalTypeMonthly, "2024-03"))
	assert.Nil(t, FindGoal(goals, entity.GoalTypeDaily, "2024-03-01"))
	assert.False(t, HasDailyGoal(goals, "2024-03"))
}
