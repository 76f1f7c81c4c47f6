package dto

import (
	"github.com/profit-tracker/backend/internal/application/usecase/tracker"
	"github.com/profit-tracker/backend/internal/domain/profit"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// GoalProgressResponse represents the progress of a period towards its goal.
type GoalProgressResponse struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Percentage float64 `json:"percentage"`
}

// CalendarDayResponse represents one cell of the month grid.
type CalendarDayResponse struct {
	Date                       string                `json:"date"`
	DayNumber                  int                   `json:"day_number"`
	IsCurrentMonth             bool                  `json:"is_current_month"`
	IsToday                    bool                  `json:"is_today"`
	IsWeekSummary              bool                  `json:"is_week_summary"`
	WeekOfMonth                int                   `json:"week_of_month"`
	EntryExists                bool                  `json:"entry_exists"`
	FinalBalance               *float64              `json:"final_balance"`
	Profit                     *float64              `json:"profit"`
	Tags                       []string              `json:"tags"`
	Notes                      string                `json:"notes,omitempty"`
	GoalProgress               *GoalProgressResponse `json:"goal_progress"`
	DynamicDailyTargetForWeek  *float64              `json:"dynamic_daily_target_for_week"`
	DynamicDailyTargetForMonth *float64              `json:"dynamic_daily_target_for_month"`
}

// WeekSummaryResponse represents the totals of one grid row.
type WeekSummaryResponse struct {
	WeekEnding   string                `json:"week_ending"`
	WeekID       string                `json:"week_id"`
	TotalProfit  float64               `json:"total_profit"`
	EntryCount   int                   `json:"entry_count"`
	GoalProgress *GoalProgressResponse `json:"goal_progress"`
}

// CalendarResponse represents the month calendar view.
type CalendarResponse struct {
	Month         string                `json:"month"`
	Days          []CalendarDayResponse `json:"days"`
	WeekSummaries []WeekSummaryResponse `json:"week_summaries"`
	MonthProfit   float64               `json:"month_profit"`
	EntryCount    int                   `json:"entry_count"`
	MonthlyGoal   *GoalProgressResponse `json:"monthly_goal"`
}

// DayResponse represents the result of a single day.
type DayResponse struct {
	Date                       string                `json:"date"`
	Profit                     float64               `json:"profit"`
	EntryExists                bool                  `json:"entry_exists"`
	IsFuture                   bool                  `json:"is_future"`
	PreviousBalance            float64               `json:"previous_balance"`
	Currency                   string                `json:"currency"`
	Entry                      *EntryResponse        `json:"entry"`
	DailyGoal                  *GoalProgressResponse `json:"daily_goal"`
	DynamicDailyTargetForWeek  *float64              `json:"dynamic_daily_target_for_week"`
	DynamicDailyTargetForMonth *float64              `json:"dynamic_daily_target_for_month"`
}

// PeriodSummaryResponse represents the summary of a week or a month.
type PeriodSummaryResponse struct {
	Type               string                `json:"type"`
	AppliesTo          string                `json:"applies_to"`
	Start              string                `json:"start"`
	End                string                `json:"end"`
	TotalProfit        float64               `json:"total_profit"`
	EntryCount         int                   `json:"entry_count"`
	GoalProgress       *GoalProgressResponse `json:"goal_progress"`
	DynamicDailyTarget *float64              `json:"dynamic_daily_target"`
}

// ReportPointResponse represents one day of a report series.
type ReportPointResponse struct {
	Date             string   `json:"date"`
	DayLabel         string   `json:"day_label"`
	DailyProfit      float64  `json:"daily_profit"`
	CumulativeProfit float64  `json:"cumulative_profit"`
	Balance          float64  `json:"balance"`
	EntryExists      bool     `json:"entry_exists"`
	Tags             []string `json:"tags"`
	Notes            string   `json:"notes,omitempty"`
}

// DayAmountResponse pairs a date with an amount.
type DayAmountResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// WeekdayProfitResponse is the profit accumulated on one day of the week.
type WeekdayProfitResponse struct {
	Weekday string  `json:"weekday"`
	Profit  float64 `json:"profit"`
}

// ReportStatsResponse represents the statistics of a report.
type ReportStatsResponse struct {
	TotalProfit            float64                 `json:"total_profit"`
	AverageDailyProfit     float64                 `json:"average_daily_profit"`
	PositiveDays           int                     `json:"positive_days"`
	NegativeDays           int                     `json:"negative_days"`
	NeutralDays            int                     `json:"neutral_days"`
	TradingDays            int                     `json:"trading_days"`
	WinRate                *float64                `json:"win_rate"`
	AvgGainPositiveDay     *float64                `json:"avg_gain_positive_day"`
	AvgLossNegativeDay     *float64                `json:"avg_loss_negative_day"`
	MaxProfitDay           *DayAmountResponse      `json:"max_profit_day"`
	MaxLossDay             *DayAmountResponse      `json:"max_loss_day"`
	ProfitFactor           *float64                `json:"profit_factor"`
	PerformanceByDayOfWeek []WeekdayProfitResponse `json:"performance_by_day_of_week"`
}

// ReportResponse represents a report over a date range.
type ReportResponse struct {
	Range  string                `json:"range"`
	Start  string                `json:"start"`
	End    string                `json:"end"`
	Points []ReportPointResponse `json:"points"`
	Stats  ReportStatsResponse   `json:"stats"`
}

// ReportWithCompareResponse carries a report and its optional comparison.
type ReportWithCompareResponse struct {
	Report  ReportResponse  `json:"report"`
	Compare *ReportResponse `json:"compare,omitempty"`
}

// ToGoalProgressResponse converts goal progress, nil when there is no goal.
func ToGoalProgressResponse(p *profit.GoalProgress) *GoalProgressResponse {
	if p == nil {
		return nil
	}
	return &GoalProgressResponse{
		Current:    money(p.Current),
		Goal:       money(p.Goal),
		Percentage: money(p.Percentage),
	}
}

// ToCalendarResponse converts a month calendar to a CalendarResponse DTO.
func ToCalendarResponse(c profit.MonthCalendar) CalendarResponse {
	response := CalendarResponse{
		Month:         c.MonthID,
		Days:          make([]CalendarDayResponse, len(c.Days)),
		WeekSummaries: make([]WeekSummaryResponse, len(c.WeekSummaries)),
		MonthProfit:   money(c.MonthProfit),
		EntryCount:    c.EntryCount,
		MonthlyGoal:   ToGoalProgressResponse(c.MonthlyGoal),
	}

	for i, d := range c.Days {
		tags := d.Tags
		if tags == nil {
			tags = []string{}
		}
		response.Days[i] = CalendarDayResponse{
			Date:                       d.DateKey,
			DayNumber:                  d.DayNumber,
			IsCurrentMonth:             d.IsCurrentMonth,
			IsToday:                    d.IsToday,
			IsWeekSummary:              d.IsWeekSummary,
			WeekOfMonth:                d.WeekOfMonth,
			EntryExists:                d.EntryExists,
			FinalBalance:               nullMoney(d.FinalBalance),
			Profit:                     nullMoney(d.Profit),
			Tags:                       tags,
			Notes:                      d.Notes,
			GoalProgress:               ToGoalProgressResponse(d.GoalProgress),
			DynamicDailyTargetForWeek:  nullMoney(d.DynamicDailyTargetForWeek),
			DynamicDailyTargetForMonth: nullMoney(d.DynamicDailyTargetForMonth),
		}
	}

	for i, w := range c.WeekSummaries {
		response.WeekSummaries[i] = WeekSummaryResponse{
			WeekEnding:   w.WeekEnding,
			WeekID:       w.WeekID,
			TotalProfit:  money(w.TotalProfit),
			EntryCount:   w.EntryCount,
			GoalProgress: ToGoalProgressResponse(w.GoalProgress),
		}
	}

	return response
}

// ToDayResponse converts a day result to a DayResponse DTO.
func ToDayResponse(output *tracker.GetDayOutput) DayResponse {
	response := DayResponse{
		Date:                       output.Result.DateKey,
		Profit:                     money(output.Result.Profit),
		EntryExists:                output.Result.EntryExists,
		IsFuture:                   output.IsFuture,
		PreviousBalance:            money(output.PreviousBalance),
		Currency:                   string(output.Currency),
		DailyGoal:                  ToGoalProgressResponse(output.DailyGoal),
		DynamicDailyTargetForWeek:  nullMoney(output.Result.DynamicDailyTargetForWeek),
		DynamicDailyTargetForMonth: nullMoney(output.Result.DynamicDailyTargetForMonth),
	}
	if output.Entry != nil {
		entry := ToEntryResponse(output.Entry)
		response.Entry = &entry
	}
	return response
}

// ToPeriodSummaryResponse converts a period summary to a PeriodSummaryResponse DTO.
func ToPeriodSummaryResponse(output *tracker.GetPeriodSummaryOutput) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Type:               string(output.Type),
		AppliesTo:          output.AppliesTo,
		Start:              valueobject.DateKeyOf(output.Range.Start),
		End:                valueobject.DateKeyOf(output.Range.End),
		TotalProfit:        money(output.Summary.TotalProfit),
		EntryCount:         output.Summary.EntryCount,
		GoalProgress:       ToGoalProgressResponse(output.Summary.GoalProgress),
		DynamicDailyTarget: nullMoney(output.DynamicDailyTarget),
	}
}

// ToReportResponse converts a report to a ReportResponse DTO.
func ToReportResponse(r profit.Report) ReportResponse {
	response := ReportResponse{
		Range:  string(r.Range),
		Start:  r.Start,
		End:    r.End,
		Points: make([]ReportPointResponse, len(r.Points)),
		Stats: ReportStatsResponse{
			TotalProfit:            money(r.Stats.TotalProfit),
			AverageDailyProfit:     money(r.Stats.AverageDailyProfit),
			PositiveDays:           r.Stats.PositiveDays,
			NegativeDays:           r.Stats.NegativeDays,
			NeutralDays:            r.Stats.NeutralDays,
			TradingDays:            r.Stats.TradingDays,
			WinRate:                nullMoney(r.Stats.WinRate),
			AvgGainPositiveDay:     nullMoney(r.Stats.AvgGainPositiveDay),
			AvgLossNegativeDay:     nullMoney(r.Stats.AvgLossNegativeDay),
			MaxProfitDay:           toDayAmountResponse(r.Stats.MaxProfitDay),
			MaxLossDay:             toDayAmountResponse(r.Stats.MaxLossDay),
			ProfitFactor:           nullMoney(r.Stats.ProfitFactor),
			PerformanceByDayOfWeek: make([]WeekdayProfitResponse, len(r.Stats.PerformanceByDayOfWeek)),
		},
	}

	for i, p := range r.Points {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		response.Points[i] = ReportPointResponse{
			Date:             p.Date,
			DayLabel:         p.DayLabel,
			DailyProfit:      money(p.DailyProfit),
			CumulativeProfit: money(p.CumulativeProfit),
			Balance:          money(p.Balance),
			EntryExists:      p.EntryExists,
			Tags:             tags,
			Notes:            p.Notes,
		}
	}

	for i, w := range r.Stats.PerformanceByDayOfWeek {
		response.Stats.PerformanceByDayOfWeek[i] = WeekdayProfitResponse{
			Weekday: w.Weekday.String(),
			Profit:  money(w.Profit),
		}
	}

	return response
}

// ToReportWithCompareResponse converts a report and its comparison.
func ToReportWithCompareResponse(output *tracker.GetReportOutput) ReportWithCompareResponse {
	response := ReportWithCompareResponse{Report: ToReportResponse(output.Report)}
	if output.Compare != nil {
		compare := ToReportResponse(*output.Compare)
		response.Compare = &compare
	}
	return response
}

func toDayAmountResponse(d *profit.DayAmount) *DayAmountResponse {
	if d == nil {
		return nil
	}
	return &DayAmountResponse{Date: d.Date, Amount: money(d.Amount)}
}
