package profit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// CalendarInput is the snapshot a month calendar is built from.
type CalendarInput struct {
	Year    int
	Month   time.Month
	Entries Entries
	Initial decimal.Decimal
	Goals   []*entity.Goal
	Today   time.Time
}

// CalendarDay is one cell of the Sunday-first month grid. Saturday cells close a row and
// are rendered with the row's WeekSummary.
type CalendarDay struct {
	Date           time.Time
	DateKey        string
	DayNumber      int
	IsCurrentMonth bool
	IsToday        bool
	IsWeekSummary  bool
	WeekOfMonth    int

	EntryExists  bool
	FinalBalance decimal.NullDecimal
	Profit       decimal.NullDecimal
	Tags         []string
	Notes        string

	GoalProgress               *GoalProgress
	DynamicDailyTargetForWeek  decimal.NullDecimal
	DynamicDailyTargetForMonth decimal.NullDecimal
}

// WeekSummary aggregates the current-month entries of one grid row, keyed by the date of
// the Saturday that closes the row.
type WeekSummary struct {
	WeekEnding   string
	WeekID       string
	TotalProfit  decimal.Decimal
	EntryCount   int
	GoalProgress *GoalProgress
}

// MonthCalendar is the calendar view model of one month.
type MonthCalendar struct {
	MonthID       string
	Days          []CalendarDay
	WeekSummaries []WeekSummary
	MonthProfit   decimal.Decimal
	EntryCount    int
	MonthlyGoal   *GoalProgress
}

// WeekSummary returns the summary of the row closed by the Saturday weekEnding.
func (c MonthCalendar) WeekSummary(weekEnding string) (WeekSummary, bool) {
	for _, w := range c.WeekSummaries {
		if w.WeekEnding == weekEnding {
			return w, true
		}
	}
	return WeekSummary{}, false
}

// BuildMonthCalendar lays out the month in a 35 or 42 cell Sunday-first grid and computes the
// profit, daily goal progress and dynamic targets of every day of the month. Dynamic targets
// are only computed up to today.
func BuildMonthCalendar(in CalendarInput) MonthCalendar {
	series := NewSeries(in.Entries, in.Initial)
	first := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	todayKey := valueobject.DateKeyOf(in.Today)
	monthID := valueobject.MonthIDOf(first)

	cal := MonthCalendar{
		MonthID:     monthID,
		MonthProfit: decimal.Zero,
	}

	leading := int(first.Weekday())
	cells := leading + last.Day()
	total := 35
	if cells > 35 {
		total = 42
	}

	gridStart := first.AddDate(0, 0, -leading)
	cal.Days = make([]CalendarDay, 0, total)
	for i := 0; i < total; i++ {
		date := gridStart.AddDate(0, 0, i)
		key := valueobject.DateKeyOf(date)
		day := CalendarDay{
			Date:           date,
			DateKey:        key,
			DayNumber:      date.Day(),
			IsCurrentMonth: date.Month() == in.Month,
			IsToday:        key == todayKey,
			IsWeekSummary:  date.Weekday() == time.Saturday,
			WeekOfMonth:    i/7 + 1,
		}
		if day.IsCurrentMonth {
			day.WeekOfMonth = valueobject.WeekOfMonth(date)
			fillCalendarDay(&day, series, in.Goals, key <= todayKey)
			if day.EntryExists {
				cal.MonthProfit = cal.MonthProfit.Add(day.Profit.Decimal)
				cal.EntryCount++
			}
		}
		cal.Days = append(cal.Days, day)
	}

	cal.WeekSummaries = summarizeRows(cal.Days, in.Goals)

	if goal := FindGoal(in.Goals, entity.GoalTypeMonthly, monthID); goal != nil {
		cal.MonthlyGoal = NewGoalProgress(cal.MonthProfit, goal.Amount)
	}
	return cal
}

func fillCalendarDay(day *CalendarDay, series *Series, goals []*entity.Goal, withTargets bool) {
	if entry, ok := series.Entry(day.DateKey); ok {
		profit := series.ProfitFor(day.DateKey)
		day.EntryExists = true
		day.FinalBalance = decimal.NewNullDecimal(entry.FinalBalance)
		day.Profit = decimal.NewNullDecimal(profit)
		day.Tags = entry.Tags
		day.Notes = entry.Notes

		if daily := FindGoal(goals, entity.GoalTypeDaily, day.DateKey); daily != nil {
			day.GoalProgress = NewGoalProgress(profit, daily.Amount)
		}
	}

	if !withTargets {
		return
	}
	result := series.ResultForDay(day.Date, goals)
	day.DynamicDailyTargetForWeek = result.DynamicDailyTargetForWeek
	day.DynamicDailyTargetForMonth = result.DynamicDailyTargetForMonth
}

// summarizeRows groups current-month entries by grid row. TotalProfit covers the whole
// row. The weekly goal is the one matching the ISO week of the row's Saturday, and its
// progress only counts Monday to Saturday: the row's Sunday closes the previous ISO week.
func summarizeRows(days []CalendarDay, goals []*entity.Goal) []WeekSummary {
	var summaries []WeekSummary
	for row := 0; row+7 <= len(days); row += 7 {
		saturday := days[row+6]
		summary := WeekSummary{
			WeekEnding:  saturday.DateKey,
			WeekID:      valueobject.WeekIDOf(saturday.Date),
			TotalProfit: decimal.Zero,
		}
		weekProfit := decimal.Zero
		for _, d := range days[row : row+7] {
			if !d.IsCurrentMonth || !d.EntryExists {
				continue
			}
			summary.TotalProfit = summary.TotalProfit.Add(d.Profit.Decimal)
			summary.EntryCount++
			if d.Date.Weekday() != time.Sunday {
				weekProfit = weekProfit.Add(d.Profit.Decimal)
			}
		}
		if summary.EntryCount == 0 {
			continue
		}
		if goal := FindGoal(goals, entity.GoalTypeWeekly, summary.WeekID); goal != nil {
			summary.GoalProgress = NewGoalProgress(weekProfit, goal.Amount)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
