package tracker

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
)

type fixture struct {
	store  *usecasetest.Store
	cache  *usecasetest.Cache
	clock  *usecasetest.Clock
	loader *SnapshotLoader
	owner  uuid.UUID
	board  *entity.Dashboard
}

// newFixture seeds the March 2024 scenario with a monthly goal of 500 and a weekly goal of
// 200 for 2024-W10, on Tuesday 2024-03-05 at noon.
func newFixture() *fixture {
	store := usecasetest.NewStore()
	owner := uuid.New()
	board := store.MarchScenario(owner)
	store.SeedGoal(board, entity.GoalTypeMonthly, 500, "2024-03")
	store.SeedGoal(board, entity.GoalTypeWeekly, 200, "2024-W10")

	return &fixture{
		store: store,
		cache: usecasetest.NewCache(),
		clock: &usecasetest.Clock{T: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)},
		loader: NewSnapshotLoader(
			dashboard.NewAccess(store.Dashboards()),
			store.Entries(),
			store.Balances(),
			store.Goals(),
			store.Settings(),
		),
		owner: owner,
		board: board,
	}
}

func trackerCode(t *testing.T, err error) domainerror.TrackerErrorCode {
	t.Helper()
	var trkErr *domainerror.TrackerError
	require.ErrorAs(t, err, &trkErr)
	return trkErr.Code
}

func TestSnapshotLoader(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	snap, err := f.loader.Load(ctx, f.board.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, "1000", snap.Initial.String())
	assert.Len(t, snap.Entries, 2)
	assert.Len(t, snap.Goals, 2)
	assert.Equal(t, entity.CurrencyBRL, snap.Currency)

	t.Run("settings currency wins", func(t *testing.T) {
		settings := entity.DefaultAppSettings(f.owner, f.board.ID)
		settings.Currency = entity.CurrencyUSD
		f.store.SeedSettings(settings)
		snap, err := f.loader.Load(ctx, f.board.ID, f.owner)
		require.NoError(t, err)
		assert.Equal(t, entity.CurrencyUSD, snap.Currency)
	})

	t.Run("missing initial balance starts at zero", func(t *testing.T) {
		empty := f.store.SeedDashboard(f.owner, "Empty")
		snap, err := f.loader.Load(ctx, empty.ID, f.owner)
		require.NoError(t, err)
		assert.True(t, snap.Initial.IsZero())
	})

	t.Run("other users are denied", func(t *testing.T) {
		_, err := f.loader.Load(ctx, f.board.ID, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrDashboardAccessDenied)
	})
}

func TestGetCalendar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewGetCalendarUseCase(f.loader, f.cache, f.clock)

	out, err := uc.Execute(ctx, GetCalendarInput{DashboardID: f.board.ID, UserID: f.owner})
	require.NoError(t, err)
	assert.False(t, out.Cached)
	assert.Equal(t, "2024-03", out.Calendar.MonthID)
	assert.Len(t, out.Calendar.Days, 42)
	assert.Equal(t, "150.00", out.Calendar.MonthProfit.StringFixed(2))

	var today profit.CalendarDay
	for _, d := range out.Calendar.Days {
		if d.DateKey == "2024-03-05" {
			today = d
		}
	}
	require.True(t, today.IsToday)
	require.True(t, today.DynamicDailyTargetForMonth.Valid)
	assert.Equal(t, "18.42", today.DynamicDailyTargetForMonth.Decimal.StringFixed(2))
	require.True(t, today.DynamicDailyTargetForWeek.Valid)
	assert.Equal(t, "37.50", today.DynamicDailyTargetForWeek.Decimal.StringFixed(2))

	t.Run("second read is served from cache", func(t *testing.T) {
		again, err := uc.Execute(ctx, GetCalendarInput{DashboardID: f.board.ID, UserID: f.owner, Month: "2024-03"})
		require.NoError(t, err)
		assert.True(t, again.Cached)
		assert.Equal(t, "150.00", again.Calendar.MonthProfit.StringFixed(2))
	})

	t.Run("invalidation forces a rebuild", func(t *testing.T) {
		f.store.SeedEntry(f.board, "2024-03-05", 1200)
		require.NoError(t, f.cache.Invalidate(ctx, f.board.ID))
		fresh, err := uc.Execute(ctx, GetCalendarInput{DashboardID: f.board.ID, UserID: f.owner, Month: "2024-03"})
		require.NoError(t, err)
		assert.False(t, fresh.Cached)
		assert.Equal(t, "200.00", fresh.Calendar.MonthProfit.StringFixed(2))
	})

	t.Run("cache is not consulted for other users", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetCalendarInput{DashboardID: f.board.ID, UserID: uuid.New(), Month: "2024-03"})
		assert.ErrorIs(t, err, domainerror.ErrDashboardAccessDenied)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetCalendarInput{DashboardID: f.board.ID, UserID: f.owner, Month: "2024-3"})
		assert.Equal(t, domainerror.ErrCodeInvalidMonth, trackerCode(t, err))
	})
}

func TestGetDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.store.SeedGoal(f.board, entity.GoalTypeDaily, 40, "2024-03-04")
	uc := NewGetDayUseCase(f.loader, f.clock)

	out, err := uc.Execute(ctx, GetDayInput{DashboardID: f.board.ID, UserID: f.owner, DateKey: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, "50.00", out.Result.Profit.StringFixed(2))
	assert.True(t, out.Result.EntryExists)
	require.NotNil(t, out.Entry)
	assert.Equal(t, []string{"scalp"}, out.Entry.Tags)
	assert.Equal(t, "1100.00", out.PreviousBalance.StringFixed(2))
	require.NotNil(t, out.DailyGoal)
	assert.Equal(t, "125.00", out.DailyGoal.Percentage.StringFixed(2))
	// The explicit daily goal suppresses the derived targets.
	assert.False(t, out.Result.DynamicDailyTargetForWeek.Valid)
	assert.False(t, out.Result.DynamicDailyTargetForMonth.Valid)

	out, err = uc.Execute(ctx, GetDayInput{DashboardID: f.board.ID, UserID: f.owner, DateKey: "2024-03-05"})
	require.NoError(t, err)
	assert.False(t, out.Result.EntryExists)
	assert.True(t, out.Result.Profit.IsZero())
	assert.Equal(t, "37.50", out.Result.DynamicDailyTargetForWeek.Decimal.StringFixed(2))
	assert.False(t, out.IsFuture)

	out, err = uc.Execute(ctx, GetDayInput{DashboardID: f.board.ID, UserID: f.owner, DateKey: "2024-03-06"})
	require.NoError(t, err)
	assert.True(t, out.IsFuture)

	_, err = uc.Execute(ctx, GetDayInput{DashboardID: f.board.ID, UserID: f.owner, DateKey: "March 5"})
	assert.Equal(t, domainerror.ErrCodeInvalidDay, trackerCode(t, err))
}

func TestGetPeriodSummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewGetPeriodSummaryUseCase(f.loader, f.clock)

	monthly, err := uc.Execute(ctx, GetPeriodSummaryInput{DashboardID: f.board.ID, UserID: f.owner, Type: "monthly"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03", monthly.AppliesTo)
	assert.Equal(t, "150.00", monthly.Summary.TotalProfit.StringFixed(2))
	assert.Equal(t, 2, monthly.Summary.EntryCount)
	require.NotNil(t, monthly.Summary.GoalProgress)
	assert.Equal(t, "30.00", monthly.Summary.GoalProgress.Percentage.StringFixed(2))
	assert.Equal(t, "18.42", monthly.DynamicDailyTarget.Decimal.StringFixed(2))

	weekly, err := uc.Execute(ctx, GetPeriodSummaryInput{DashboardID: f.board.ID, UserID: f.owner, Type: "weekly", AppliesTo: "2024-W10"})
	require.NoError(t, err)
	assert.Equal(t, "50.00", weekly.Summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "25.00", weekly.Summary.GoalProgress.Percentage.StringFixed(2))

	past, err := uc.Execute(ctx, GetPeriodSummaryInput{DashboardID: f.board.ID, UserID: f.owner, Type: "weekly", AppliesTo: "2024-W09"})
	require.NoError(t, err)
	assert.Nil(t, past.Summary.GoalProgress)
	assert.False(t, past.DynamicDailyTarget.Valid)

	_, err = uc.Execute(ctx, GetPeriodSummaryInput{DashboardID: f.board.ID, UserID: f.owner, Type: "daily"})
	assert.Equal(t, domainerror.ErrCodeInvalidPeriodType, trackerCode(t, err))

	_, err = uc.Execute(ctx, GetPeriodSummaryInput{DashboardID: f.board.ID, UserID: f.owner, Type: "weekly", AppliesTo: "2024-03"})
	assert.Equal(t, domainerror.ErrCodeInvalidPeriodID, trackerCode(t, err))
}

func TestGetReport(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.clock.T = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	f.store.SeedEntry(f.board, "2024-02-20", 990)
	uc := NewGetReportUseCase(f.loader, f.clock)

	out, err := uc.Execute(ctx, GetReportInput{DashboardID: f.board.ID, UserID: f.owner, Range: "thisMonth", Compare: "last90days"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", out.Report.Start)
	assert.Equal(t, "2024-03-10", out.Report.End)
	assert.Len(t, out.Report.Points, 10)
	// Feb 20 closed at 990, so March starts from there.
	assert.Equal(t, "160.00", out.Report.Stats.TotalProfit.StringFixed(2))
	require.NotNil(t, out.Compare)
	assert.Equal(t, profit.RangeLast90Days, out.Compare.Range)
	assert.Len(t, out.Compare.Points, 90)
	assert.Equal(t, "150.00", out.Compare.Stats.TotalProfit.StringFixed(2))

	t.Run("tag filter", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetReportInput{DashboardID: f.board.ID, UserID: f.owner, Range: "allTime", Tags: []string{" scalp ", ""}})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Report.Stats.TradingDays)
		assert.Nil(t, out.Compare)
	})

	t.Run("custom range", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetReportInput{DashboardID: f.board.ID, UserID: f.owner, Range: "custom", Start: "2024-03-02", End: "2024-03-04"})
		require.NoError(t, err)
		assert.Len(t, out.Report.Points, 3)
		assert.Equal(t, "50.00", out.Report.Stats.TotalProfit.StringFixed(2))
	})

	t.Run("custom range at the limit", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetReportInput{DashboardID: f.board.ID, UserID: f.owner, Range: "custom", Start: "2014-01-01", End: "2024-01-08"})
		require.NoError(t, err)
		assert.Len(t, out.Report.Points, profit.MaxReportDays)
	})

	errorsTable := []struct {
		name  string
		input GetReportInput
		code  domainerror.TrackerErrorCode
	}{
		{"unknown range", GetReportInput{Range: "lastWeek"}, domainerror.ErrCodeInvalidReportRange},
		{"custom without bounds", GetReportInput{Range: "custom"}, domainerror.ErrCodeInvalidCustomRange},
		{"custom reversed", GetReportInput{Range: "custom", Start: "2024-03-05", End: "2024-03-01"}, domainerror.ErrCodeInvalidCustomRange},
		{"custom comparison", GetReportInput{Range: "thisMonth", Compare: "custom"}, domainerror.ErrCodeInvalidReportRange},
		{"custom spanning centuries", GetReportInput{Range: "custom", Start: "1800-01-01", End: "2099-12-31"}, domainerror.ErrCodeInvalidCustomRange},
		{"custom one day past the limit", GetReportInput{Range: "custom", Start: "2014-01-01", End: "2024-01-09"}, domainerror.ErrCodeInvalidCustomRange},
	}
	for _, tt := range errorsTable {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.DashboardID = f.board.ID
			tt.input.UserID = f.owner
			_, err := uc.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, trackerCode(t, err))
		})
	}
}

func TestExportEntries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewExportEntriesUseCase(f.loader, f.clock)

	csvOut, err := uc.Execute(ctx, ExportEntriesInput{DashboardID: f.board.ID, UserID: f.owner})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", csvOut.ContentType)
	assert.Equal(t, "profit_tracker_export_2024-03-05.csv", csvOut.Filename)

	lines := strings.Split(strings.TrimSpace(string(csvOut.Body)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "date,final_balance,final_balance_formatted,profit,profit_formatted,tags,notes", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "INITIAL_BALANCE,1000.00,"))
	assert.True(t, strings.HasPrefix(lines[2], "2024-03-01,1100.00,"))
	assert.Contains(t, lines[3], "50.00")

	jsonOut, err := uc.Execute(ctx, ExportEntriesInput{DashboardID: f.board.ID, UserID: f.owner, Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", jsonOut.ContentType)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonOut.Body, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "INITIAL_BALANCE", records[0]["date"])
	assert.Equal(t, 100.0, records[1]["profit"])
	assert.Equal(t, "breakout", records[1]["tags"])

	_, err = uc.Execute(ctx, ExportEntriesInput{DashboardID: f.board.ID, UserID: f.owner, Format: "xlsx"})
	assert.Equal(t, domainerror.ErrCodeInvalidExportFormat, trackerCode(t, err))
}
