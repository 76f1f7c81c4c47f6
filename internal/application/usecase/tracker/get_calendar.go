package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// GetCalendarInput represents the input for the month calendar view.
type GetCalendarInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Month       string // YYYY-MM, defaults to the current month
}

// GetCalendarOutput represents the month calendar view.
type GetCalendarOutput struct {
	Calendar profit.MonthCalendar
	Cached   bool
}

// GetCalendarUseCase builds the month calendar with daily profit, goal progress, week
// summaries and dynamic daily targets.
type GetCalendarUseCase struct {
	loader *SnapshotLoader
	cache  adapter.ViewCache
	clock  adapter.Clock
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(loader *SnapshotLoader, cache adapter.ViewCache, clock adapter.Clock) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		loader: loader,
		cache:  cache,
		clock:  clock,
	}
}

// Execute builds the calendar, serving it from the view cache when possible.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	now := uc.clock.Now()
	monthID := input.Month
	if monthID == "" {
		monthID = valueobject.MonthIDOf(now)
	}
	year, month, err := valueobject.ParseMonthID(monthID)
	if err != nil {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidMonth,
			"invalid month, expected YYYY-MM",
			domainerror.ErrInvalidMonth,
		)
	}

	// Ownership is checked before any cache read.
	d, err := uc.loader.Authorize(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}

	// "Today" decides which days get targets, so it is part of the key.
	key := fmt.Sprintf("calendar:%s:%s", monthID, valueobject.DateKeyOf(now))
	var cached profit.MonthCalendar
	found, version, err := uc.cache.Get(ctx, input.DashboardID, key, &cached)
	cacheable := err == nil
	if err != nil {
		slog.Warn("Failed to read cached calendar", "dashboardID", input.DashboardID, "error", err)
	}
	if found {
		return &GetCalendarOutput{Calendar: cached, Cached: true}, nil
	}

	snapshot, err := uc.loader.Read(ctx, d)
	if err != nil {
		return nil, err
	}

	calendar := profit.BuildMonthCalendar(profit.CalendarInput{
		Year:    year,
		Month:   month,
		Entries: snapshot.Entries,
		Initial: snapshot.Initial,
		Goals:   snapshot.Goals,
		Today:   now,
	})

	if cacheable {
		if err := uc.cache.Set(ctx, input.DashboardID, version, key, calendar); err != nil {
			slog.Warn("Failed to cache calendar", "dashboardID", input.DashboardID, "error", err)
		}
	}

	return &GetCalendarOutput{Calendar: calendar}, nil
}
