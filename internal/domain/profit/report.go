package profit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// ReportRange selects the window a report covers.
type ReportRange string

const (
	RangeThisMonth  ReportRange = "thisMonth"
	RangeLast30Days ReportRange = "last30days"
	RangeLast90Days ReportRange = "last90days"
	RangeThisYear   ReportRange = "thisYear"
	RangeAllTime    ReportRange = "allTime"
	RangeCustom     ReportRange = "custom"
)

// IsValid reports whether the range is supported.
func (r ReportRange) IsValid() bool {
	switch r {
	case RangeThisMonth, RangeLast30Days, RangeLast90Days, RangeThisYear, RangeAllTime, RangeCustom:
		return true
	}
	return false
}

// ReportInput is the snapshot and filters a report is built from. Custom is required for
// RangeCustom and ignored otherwise. Tags restricts the series to entries carrying at least
// one of the tags.
type ReportInput struct {
	Entries Entries
	Initial decimal.Decimal
	Range   ReportRange
	Custom  *valueobject.PeriodRange
	Tags    []string
	Today   time.Time
}

// ReportPoint is one day of a report series.
type ReportPoint struct {
	Date             string
	DayLabel         string
	DailyProfit      decimal.Decimal
	CumulativeProfit decimal.Decimal
	Balance          decimal.Decimal
	EntryExists      bool
	Tags             []string
	Notes            string
}

// DayAmount pairs a date key with an amount.
type DayAmount struct {
	Date   string
	Amount decimal.Decimal
}

// WeekdayProfit is the profit accumulated on one day of the week.
type WeekdayProfit struct {
	Weekday time.Weekday
	Profit  decimal.Decimal
}

// ReportStats summarizes the trading days of a report. Ratios that have no denominator are
// left invalid.
type ReportStats struct {
	TotalProfit            decimal.Decimal
	AverageDailyProfit     decimal.Decimal
	PositiveDays           int
	NegativeDays           int
	NeutralDays            int
	TradingDays            int
	WinRate                decimal.NullDecimal
	AvgGainPositiveDay     decimal.NullDecimal
	AvgLossNegativeDay     decimal.NullDecimal
	MaxProfitDay           *DayAmount
	MaxLossDay             *DayAmount
	ProfitFactor           decimal.NullDecimal
	PerformanceByDayOfWeek []WeekdayProfit
}

// Report is a daily profit series over a window with its summary statistics.
type Report struct {
	Range  ReportRange
	Start  string
	End    string
	Points []ReportPoint
	Stats  ReportStats
}

// BuildReport walks every day of the selected window, attributing to each day the profit of
// its entry relative to the running balance. Entries excluded by the tag filter neither
// produce profit nor move the running balance.
func BuildReport(in ReportInput) Report {
	keys := in.Entries.SortedKeys()
	filtered := make([]string, 0, len(keys))
	for _, k := range keys {
		if in.Entries[k].HasAnyTag(in.Tags) {
			filtered = append(filtered, k)
		}
	}

	today := valueobject.DateOf(in.Today)
	report := Report{Range: in.Range}

	if len(filtered) == 0 && in.Range != RangeAllTime && len(in.Tags) > 0 {
		report.Stats = summarizeReport(nil)
		return report
	}

	if in.Range == RangeAllTime && len(filtered) == 0 {
		key := valueobject.DateKeyOf(today)
		report.Start, report.End = key, key
		report.Points = []ReportPoint{{
			Date:             key,
			DayLabel:         dayLabel(today),
			DailyProfit:      decimal.Zero,
			CumulativeProfit: decimal.Zero,
			Balance:          in.Initial,
		}}
		report.Stats = summarizeReport(report.Points)
		return report
	}

	start, end := ReportWindow(in.Range, in.Custom, filtered, today)
	startKey := valueobject.DateKeyOf(start)

	running := in.Initial
	for _, k := range filtered {
		if k >= startKey {
			break
		}
		running = in.Entries[k].FinalBalance
	}

	cumulative := decimal.Zero
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := valueobject.DateKeyOf(d)
		point := ReportPoint{Date: key, DayLabel: dayLabel(d), DailyProfit: decimal.Zero}

		if entry, ok := in.Entries[key]; ok {
			point.Tags = entry.Tags
			point.Notes = entry.Notes
			if entry.HasAnyTag(in.Tags) {
				point.EntryExists = true
				point.DailyProfit = entry.FinalBalance.Sub(running)
				running = entry.FinalBalance
			}
		}

		cumulative = cumulative.Add(point.DailyProfit)
		point.CumulativeProfit = cumulative
		point.Balance = running
		report.Points = append(report.Points, point)
	}

	report.Start = valueobject.DateKeyOf(start)
	report.End = valueobject.DateKeyOf(end)
	report.Stats = summarizeReport(report.Points)
	return report
}

// MaxReportDays bounds the number of daily points in one report.
const MaxReportDays = 3660

// ReportWindow resolves the first and last day of a report. thisMonth and thisYear stop at
// today; allTime runs from the first matching entry to the later of today and the last entry,
// keeping only the last MaxReportDays days.
func ReportWindow(r ReportRange, custom *valueobject.PeriodRange, sortedKeys []string, today time.Time) (start, end time.Time) {
	today = valueobject.DateOf(today)
	switch r {
	case RangeThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = minDate(start.AddDate(0, 1, -1), today)
	case RangeLast30Days:
		start, end = today.AddDate(0, 0, -29), today
	case RangeLast90Days:
		start, end = today.AddDate(0, 0, -89), today
	case RangeThisYear:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = minDate(time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC), today)
	case RangeCustom:
		if custom != nil {
			return valueobject.DateOf(custom.Start), valueobject.DateOf(custom.End)
		}
		return today, today
	default:
		start, end = today, today
		if len(sortedKeys) > 0 {
			first, _ := valueobject.ParseDateKey(sortedKeys[0])
			last, _ := valueobject.ParseDateKey(sortedKeys[len(sortedKeys)-1])
			start = first
			if last.After(end) {
				end = last
			}
		}
		if earliest := end.AddDate(0, 0, -(MaxReportDays - 1)); start.Before(earliest) {
			start = earliest
		}
	}
	return start, end
}

func summarizeReport(points []ReportPoint) ReportStats {
	stats := ReportStats{
		TotalProfit:            decimal.Zero,
		AverageDailyProfit:     decimal.Zero,
		PerformanceByDayOfWeek: make([]WeekdayProfit, 7),
	}
	for i := range stats.PerformanceByDayOfWeek {
		stats.PerformanceByDayOfWeek[i] = WeekdayProfit{Weekday: time.Weekday(i), Profit: decimal.Zero}
	}

	sumPositive := decimal.Zero
	sumNegative := decimal.Zero
	for _, p := range points {
		stats.TotalProfit = stats.TotalProfit.Add(p.DailyProfit)
		if !p.EntryExists {
			continue
		}

		stats.TradingDays++
		switch p.DailyProfit.Sign() {
		case 1:
			stats.PositiveDays++
			sumPositive = sumPositive.Add(p.DailyProfit)
			if stats.MaxProfitDay == nil || p.DailyProfit.GreaterThan(stats.MaxProfitDay.Amount) {
				stats.MaxProfitDay = &DayAmount{Date: p.Date, Amount: p.DailyProfit}
			}
		case -1:
			stats.NegativeDays++
			sumNegative = sumNegative.Add(p.DailyProfit)
			if stats.MaxLossDay == nil || p.DailyProfit.LessThan(stats.MaxLossDay.Amount) {
				stats.MaxLossDay = &DayAmount{Date: p.Date, Amount: p.DailyProfit}
			}
		default:
			stats.NeutralDays++
		}

		if d, err := valueobject.ParseDateKey(p.Date); err == nil {
			wd := d.Weekday()
			stats.PerformanceByDayOfWeek[wd].Profit = stats.PerformanceByDayOfWeek[wd].Profit.Add(p.DailyProfit)
		}
	}

	if stats.TradingDays > 0 {
		stats.AverageDailyProfit = stats.TotalProfit.Div(decimal.NewFromInt(int64(stats.TradingDays)))
	}
	if decided := stats.PositiveDays + stats.NegativeDays; decided > 0 {
		stats.WinRate = decimal.NewNullDecimal(
			decimal.NewFromInt(int64(stats.PositiveDays)).Div(decimal.NewFromInt(int64(decided))).Mul(hundred))
	}
	if stats.PositiveDays > 0 {
		stats.AvgGainPositiveDay = decimal.NewNullDecimal(sumPositive.Div(decimal.NewFromInt(int64(stats.PositiveDays))))
	}
	if stats.NegativeDays > 0 {
		stats.AvgLossNegativeDay = decimal.NewNullDecimal(sumNegative.Div(decimal.NewFromInt(int64(stats.NegativeDays))))
		stats.ProfitFactor = decimal.NewNullDecimal(sumPositive.Div(sumNegative).Abs())
	}
	return stats
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
