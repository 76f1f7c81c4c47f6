package profit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

func TestDynamicDailyTarget_MarchScenario(t *testing.T) {
	entries, initial := marchScenario()
	monthly := goal(entity.GoalTypeMonthly, 500, "2024-03")

	got := DynamicDailyTarget(monthly, entries, initial, day("2024-03-05"), []*entity.Goal{monthly})

	require.True(t, got.Valid)
	expected := dec(350).Div(decimal.NewFromInt(19))
	assert.True(t, got.Decimal.Equal(expected), "got %s", got.Decimal)
	assert.Equal(t, "18.42", got.Decimal.Round(2).StringFixed(2))
}

func TestDynamicDailyTarget_NotApplicable(t *testing.T) {
	entries, initial := marchScenario()
	monthly := goal(entity.GoalTypeMonthly, 500, "2024-03")

	tests := []struct {
		name     string
		goal     *entity.Goal
		ref      time.Time
		allGoals []*entity.Goal
	}{
		{
			name:     "daily goal",
			goal:     goal(entity.GoalTypeDaily, 50, "2024-03-05"),
			ref:      day("2024-03-05"),
			allGoals: nil,
		},
		{
			name:     "explicit daily goal on the reference date",
			goal:     monthly,
			ref:      day("2024-03-05"),
			allGoals: []*entity.Goal{monthly, goal(entity.GoalTypeDaily, 10, "2024-03-05")},
		},
		{
			name:     "malformed applies_to",
			goal:     goal(entity.GoalTypeMonthly, 500, "March 2024"),
			ref:      day("2024-03-05"),
			allGoals: nil,
		},
		{
			name:     "reference before the period",
			goal:     monthly,
			ref:      day("2024-02-29"),
			allGoals: []*entity.Goal{monthly},
		},
		{
			name:     "reference after the period",
			goal:     monthly,
			ref:      day("2024-04-01"),
			allGoals: []*entity.Goal{monthly},
		},
		{
			name:     "weekend with no working day left",
			goal:     goal(entity.GoalTypeWeekly, 200, "2024-W10"),
			ref:      day("2024-03-09"),
			allGoals: nil,
		},
		{
			name:     "nil goal",
			goal:     nil,
			ref:      day("2024-03-05"),
			allGoals: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DynamicDailyTarget(tt.goal, entries, initial, tt.ref, tt.allGoals)
			assert.False(t, got.Valid)
		})
	}
}

func TestDynamicDailyTarget_ExplicitDailyGoalAlwaysWins(t *testing.T) {
	entries, initial := marchScenario()
	monthly := goal(entity.GoalTypeMonthly, 500, "2024-03")
	weekly := goal(entity.GoalTypeWeekly, 100, "2024-W10")

	for _, ref := range valueobject.NewPeriodRange(day("2024-03-01"), day("2024-03-31")).Days() {
		key := valueobject.DateKeyOf(ref)
		goals := []*entity.Goal{monthly, weekly, goal(entity.GoalTypeDaily, 1, key)}

		assert.False(t, DynamicDailyTarget(monthly, entries, initial, ref, goals).Valid, key)
		assert.False(t, DynamicDailyTarget(weekly, entries, initial, ref, goals).Valid, key)
	}
}

func TestDynamicDailyTarget_GoalMetIsZeroForRestOfPeriod(t *testing.T) {
	entries := entriesOf(map[string]float64{
		"2024-03-01": 1300,
		"2024-03-04": 1600,
		"2024-03-11": 1400,
	})
	initial := dec(1000)
	monthly := goal(entity.GoalTypeMonthly, 500, "2024-03")

	// Realized reaches 600 before 2024-03-05; the loss on the 11th only brings it to 400
	// from the 12th on, so the target comes back there.
	for _, ref := range valueobject.NewPeriodRange(day("2024-03-05"), day("2024-03-11")).Days() {
		got := DynamicDailyTarget(monthly, entries, initial, ref, nil)
		require.True(t, got.Valid, valueobject.DateKeyOf(ref))
		assert.True(t, got.Decimal.IsZero(), valueobject.DateKeyOf(ref))
	}

	after := DynamicDailyTarget(monthly, entries, initial, day("2024-03-12"), nil)
	require.True(t, after.Valid)
	assert.True(t, after.Decimal.IsPositive())
}

func TestDynamicDailyTarget_NeverNegative(t *testing.T) {
	entries := entriesOf(map[string]float64{"2024-03-01": 5000})
	monthly := goal(entity.GoalTypeMonthly, 100, "2024-03")

	for _, ref := range valueobject.NewPeriodRange(day("2024-03-02"), day("2024-03-31")).Days() {
		got := DynamicDailyTarget(monthly, entries, dec(1000), ref, nil)
		if got.Valid {
			assert.False(t, got.Decimal.IsNegative())
		}
	}
}

func TestDynamicDailyTarget_LastWorkingDayAbsorbsShortfall(t *testing.T) {
	// 2024-03-29 is the last weekday of March 2024.
	entries := entriesOf(map[string]float64{"2024-03-28": 900})
	monthly := goal(entity.GoalTypeMonthly, 1000, "2024-03")

	got := DynamicDailyTarget(monthly, entries, dec(0), day("2024-03-29"), nil)

	require.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(dec(100)), "got %s", got.Decimal)
}

func TestDynamicDailyTarget_WeeklyAcrossYearBoundary(t *testing.T) {
	weekly := goal(entity.GoalTypeWeekly, 100, "2025-W01")

	got := DynamicDailyTarget(weekly, Entries{}, dec(0), day("2024-12-31"), nil)

	require.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(dec(25)), "got %s", got.Decimal)
	assert.Equal(t, "2025-W01", valueobject.WeekIDOf(day("2024-12-31")))
}

func TestDynamicDailyTarget_WeeklyUsesRealizedProfitOfTheWeek(t *testing.T) {
	entries, initial := marchScenario()
	weekly := goal(entity.GoalTypeWeekly, 200, "2024-W10")

	// Monday made 50, leaving 150 over Tuesday to Friday.
	got := DynamicDailyTarget(weekly, entries, initial, day("2024-03-05"), nil)

	require.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(dec(37.5)), "got %s", got.Decimal)
}

func TestDynamicDailyTarget_IgnoresTimeOfDay(t *testing.T) {
	entries, initial := marchScenario()
	monthly := goal(entity.GoalTypeMonthly, 500, "2024-03")
	loc := time.FixedZone("BRT", -3*3600)

	atMidnight := DynamicDailyTarget(monthly, entries, initial, day("2024-03-05"), nil)
	evening := DynamicDailyTarget(monthly, entries, initial, time.Date(2024, time.March, 5, 21, 30, 0, 0, loc), nil)

	require.True(t, evening.Valid)
	assert.True(t, atMidnight.Decimal.Equal(evening.Decimal))
}
