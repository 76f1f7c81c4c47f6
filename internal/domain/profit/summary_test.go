package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

func TestSummarizePeriod(t *testing.T) {
	entries, initial := marchScenario()
	entries["2024-02-28"] = entity.DailyEntry{DateKey: "2024-02-28", FinalBalance: dec(950)}
	entries["2024-04-01"] = entity.DailyEntry{DateKey: "2024-04-01", FinalBalance: dec(2000)}

	rng, err := valueobject.MonthRange("2024-03")
	require.NoError(t, err)

	t.Run("with goal", func(t *testing.T) {
		summary := SummarizePeriod(rng, entries, initial, goal(entity.GoalTypeMonthly, 500, "2024-03"))

		// 2024-03-01 is measured against the February entry.
		assert.True(t, summary.TotalProfit.Equal(dec(200)), "got %s", summary.TotalProfit)
		assert.Equal(t, 2, summary.EntryCount)
		require.NotNil(t, summary.GoalProgress)
		assert.True(t, summary.GoalProgress.Goal.Equal(dec(500)))
		assert.Equal(t, "40.00", summary.GoalProgress.Percentage.StringFixed(2))
	})

	t.Run("without goal", func(t *testing.T) {
		summary := SummarizePeriod(rng, entries, initial, nil)
		assert.Nil(t, summary.GoalProgress)
	})

	t.Run("empty period", func(t *testing.T) {
		week, err := valueobject.WeekRange("2024-W12")
		require.NoError(t, err)
		summary := SummarizePeriod(week, entries, initial, nil)
		assert.True(t, summary.TotalProfit.IsZero())
		assert.Zero(t, summary.EntryCount)
	})
}

func TestSeries_ResultForDay(t *testing.T) {
	entries, initial := marchScenario()
	series := NewSeries(entries, initial)
	goals := []*entity.Goal{
		goal(entity.GoalTypeMonthly, 500, "2024-03"),
		goal(entity.GoalTypeWeekly, 200, "2024-W10"),
	}

	result := series.ResultForDay(day("2024-03-04"), goals)
	assert.Equal(t, "2024-03-04", result.DateKey)
	assert.True(t, result.EntryExists)
	assert.True(t, result.Profit.Equal(dec(50)))
	require.True(t, result.DynamicDailyTargetForWeek.Valid)
	assert.True(t, result.DynamicDailyTargetForWeek.Decimal.Equal(dec(40)))
	require.True(t, result.DynamicDailyTargetForMonth.Valid)

	none := series.ResultForDay(day("2024-03-04"), append(goals, goal(entity.GoalTypeDaily, 10, "2024-03-04")))
	assert.False(t, none.DynamicDailyTargetForWeek.Valid)
	assert.False(t, none.DynamicDailyTargetForMonth.Valid)
}

func TestNewGoalProgress(t *testing.T) {
	p := NewGoalProgress(dec(150), dec(100))
	assert.Equal(t, "150.00", p.Percentage.StringFixed(2))
	assert.True(t, p.IsMet())

	negative := NewGoalProgress(dec(-30), dec(120))
	assert.Equal(t, "-25.00", negative.Percentage.StringFixed(2))
	assert.False(t, negative.IsMet())
}
