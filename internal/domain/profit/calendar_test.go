package profit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

func findDay(t *testing.T, cal MonthCalendar, key string) CalendarDay {
	t.Helper()
	for _, d := range cal.Days {
		if d.DateKey == key {
			return d
		}
	}
	t.Fatalf("day %s not in grid", key)
	return CalendarDay{}
}

func marchCalendar() MonthCalendar {
	entries, initial := marchScenario()
	entries = withTags(entries, "2024-03-01", "breakout")
	goals := []*entity.Goal{
		goal(entity.GoalTypeMonthly, 500, "2024-03"),
		goal(entity.GoalTypeWeekly, 200, "2024-W10"),
		goal(entity.GoalTypeDaily, 40, "2024-03-04"),
	}
	return BuildMonthCalendar(CalendarInput{
		Year:    2024,
		Month:   time.March,
		Entries: entries,
		Initial: initial,
		Goals:   goals,
		Today:   day("2024-03-05"),
	})
}

func TestBuildMonthCalendar_Grid(t *testing.T) {
	cal := marchCalendar()

	// March 2024 starts on a Friday: 5 leading cells + 31 days needs six rows.
	require.Len(t, cal.Days, 42)
	assert.Equal(t, "2024-03", cal.MonthID)
	assert.Equal(t, "2024-02-25", cal.Days[0].DateKey)
	assert.Equal(t, time.Sunday, cal.Days[0].Date.Weekday())
	assert.False(t, cal.Days[0].IsCurrentMonth)
	assert.Equal(t, "2024-03-01", cal.Days[5].DateKey)
	assert.Equal(t, "2024-04-06", cal.Days[41].DateKey)

	for i, d := range cal.Days {
		assert.Equal(t, d.Date.Weekday() == time.Saturday, d.IsWeekSummary, d.DateKey)
		if d.IsCurrentMonth {
			assert.Equal(t, i/7+1, d.WeekOfMonth, d.DateKey)
			assert.Equal(t, valueobject.WeekOfMonth(d.Date), d.WeekOfMonth, d.DateKey)
		}
	}
	assert.True(t, findDay(t, cal, "2024-03-05").IsToday)
}

func TestBuildMonthCalendar_FiveRowMonth(t *testing.T) {
	cal := BuildMonthCalendar(CalendarInput{Year: 2024, Month: time.April, Entries: Entries{}, Today: day("2024-04-01")})
	// April 2024 starts on a Monday: 1 + 30 cells fit in five rows.
	assert.Len(t, cal.Days, 35)
	assert.Empty(t, cal.WeekSummaries)
	assert.Nil(t, cal.MonthlyGoal)
	assert.True(t, cal.MonthProfit.IsZero())
}

func TestBuildMonthCalendar_Days(t *testing.T) {
	cal := marchCalendar()

	first := findDay(t, cal, "2024-03-01")
	require.True(t, first.EntryExists)
	assert.True(t, first.Profit.Decimal.Equal(dec(100)))
	assert.True(t, first.FinalBalance.Decimal.Equal(dec(1100)))
	assert.Equal(t, []string{"breakout"}, first.Tags)
	assert.Nil(t, first.GoalProgress)
	assert.False(t, first.DynamicDailyTargetForWeek.Valid, "2024-03-01 is in 2024-W09")
	require.True(t, first.DynamicDailyTargetForMonth.Valid)
	assert.Equal(t, "23.81", first.DynamicDailyTargetForMonth.Decimal.StringFixed(2))

	saturday := findDay(t, cal, "2024-03-02")
	assert.False(t, saturday.EntryExists)
	assert.False(t, saturday.Profit.Valid)

	monday := findDay(t, cal, "2024-03-04")
	require.NotNil(t, monday.GoalProgress)
	assert.True(t, monday.GoalProgress.Current.Equal(dec(50)))
	assert.Equal(t, "125.00", monday.GoalProgress.Percentage.StringFixed(2))
	assert.False(t, monday.DynamicDailyTargetForWeek.Valid)
	assert.False(t, monday.DynamicDailyTargetForMonth.Valid)

	today := findDay(t, cal, "2024-03-05")
	require.True(t, today.DynamicDailyTargetForWeek.Valid)
	assert.True(t, today.DynamicDailyTargetForWeek.Decimal.Equal(dec(37.5)))
	require.True(t, today.DynamicDailyTargetForMonth.Valid)
	assert.Equal(t, "18.42", today.DynamicDailyTargetForMonth.Decimal.StringFixed(2))

	future := findDay(t, cal, "2024-03-06")
	assert.False(t, future.DynamicDailyTargetForWeek.Valid)
	assert.False(t, future.DynamicDailyTargetForMonth.Valid)

	padding := findDay(t, cal, "2024-02-26")
	assert.False(t, padding.EntryExists)
	assert.False(t, padding.DynamicDailyTargetForMonth.Valid)
}

func TestBuildMonthCalendar_Summaries(t *testing.T) {
	cal := marchCalendar()

	require.Len(t, cal.WeekSummaries, 2)

	first, ok := cal.WeekSummary("2024-03-02")
	require.True(t, ok)
	assert.Equal(t, "2024-W09", first.WeekID)
	assert.Equal(t, 1, first.EntryCount)
	assert.True(t, first.TotalProfit.Equal(dec(100)))
	assert.Nil(t, first.GoalProgress)

	second, ok := cal.WeekSummary("2024-03-09")
	require.True(t, ok)
	assert.Equal(t, "2024-W10", second.WeekID)
	assert.Equal(t, 1, second.EntryCount)
	require.NotNil(t, second.GoalProgress)
	assert.Equal(t, "25.00", second.GoalProgress.Percentage.StringFixed(2))

	_, ok = cal.WeekSummary("2024-03-16")
	assert.False(t, ok)

	assert.True(t, cal.MonthProfit.Equal(dec(150)))
	assert.Equal(t, 2, cal.EntryCount)
	require.NotNil(t, cal.MonthlyGoal)
	assert.Equal(t, "30.00", cal.MonthlyGoal.Percentage.StringFixed(2))
	assert.False(t, cal.MonthlyGoal.IsMet())
}

func TestBuildMonthCalendar_WeeklyGoalSkipsTheRowSunday(t *testing.T) {
	// 2024-03-10 is a Sunday in ISO week 10; the rest of its row is week 11.
	entries := entriesOf(map[string]float64{
		"2024-03-10": 1100,
		"2024-03-11": 1150,
	})
	cal := BuildMonthCalendar(CalendarInput{
		Year:    2024,
		Month:   time.March,
		Entries: entries,
		Initial: dec(1000),
		Goals:   []*entity.Goal{goal(entity.GoalTypeWeekly, 200, "2024-W11")},
		Today:   day("2024-03-12"),
	})

	summary, ok := cal.WeekSummary("2024-03-16")
	require.True(t, ok)
	assert.Equal(t, "2024-W11", summary.WeekID)
	assert.Equal(t, 2, summary.EntryCount)
	assert.True(t, summary.TotalProfit.Equal(dec(150)), "row total keeps the Sunday")
	require.NotNil(t, summary.GoalProgress)
	assert.True(t, summary.GoalProgress.Current.Equal(dec(50)), "got %s", summary.GoalProgress.Current)
	assert.Equal(t, "25.00", summary.GoalProgress.Percentage.StringFixed(2))
}

func TestBuildMonthCalendar_IgnoresEntriesOutsideMonth(t *testing.T) {
	entries := entriesOf(map[string]float64{
		"2024-02-29": 1200,
		"2024-03-01": 1300,
	})
	cal := BuildMonthCalendar(CalendarInput{
		Year: 2024, Month: time.March, Entries: entries, Initial: dec(1000), Today: day("2024-03-31"),
	})

	assert.False(t, findDay(t, cal, "2024-02-29").EntryExists)
	assert.True(t, findDay(t, cal, "2024-03-01").Profit.Decimal.Equal(dec(100)))
	assert.True(t, cal.MonthProfit.Equal(dec(100)))
}
