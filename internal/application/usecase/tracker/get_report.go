package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// GetReportInput represents the input for a report. Start and End are only read for the
// custom range. Compare optionally names a second preset range computed with the same tags.
type GetReportInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Range       string
	Start       string
	End         string
	Compare     string
	Tags        []string
}

// GetReportOutput represents a report and its optional comparison.
type GetReportOutput struct {
	Report  profit.Report
	Compare *profit.Report
}

// GetReportUseCase builds the daily profit series and statistics of a date range.
type GetReportUseCase struct {
	loader *SnapshotLoader
	clock  adapter.Clock
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(loader *SnapshotLoader, clock adapter.Clock) *GetReportUseCase {
	return &GetReportUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute builds the report.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	rangeName := profit.ReportRange(input.Range)
	if input.Range == "" {
		rangeName = profit.RangeThisMonth
	}
	if !rangeName.IsValid() {
		return nil, invalidRangeError()
	}

	var custom *valueobject.PeriodRange
	if rangeName == profit.RangeCustom {
		rng, err := parseCustomRange(input.Start, input.End)
		if err != nil {
			return nil, err
		}
		custom = &rng
	}

	var compareName profit.ReportRange
	if input.Compare != "" {
		compareName = profit.ReportRange(input.Compare)
		if !compareName.IsValid() || compareName == profit.RangeCustom {
			return nil, invalidRangeError()
		}
	}

	snapshot, err := uc.loader.Load(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}

	tags := cleanTags(input.Tags)
	today := uc.clock.Now()
	output := &GetReportOutput{
		Report: profit.BuildReport(profit.ReportInput{
			Entries: snapshot.Entries,
			Initial: snapshot.Initial,
			Range:   rangeName,
			Custom:  custom,
			Tags:    tags,
			Today:   today,
		}),
	}

	if compareName != "" {
		compare := profit.BuildReport(profit.ReportInput{
			Entries: snapshot.Entries,
			Initial: snapshot.Initial,
			Range:   compareName,
			Tags:    tags,
			Today:   today,
		})
		output.Compare = &compare
	}

	return output, nil
}

func parseCustomRange(startKey, endKey string) (valueobject.PeriodRange, error) {
	invalid := domainerror.NewTrackerError(
		domainerror.ErrCodeInvalidCustomRange,
		fmt.Sprintf("custom range requires start and end with start <= end, spanning at most %d days", profit.MaxReportDays),
		domainerror.ErrInvalidCustomRange,
	)

	start, err := valueobject.ParseDateKey(startKey)
	if err != nil {
		return valueobject.PeriodRange{}, invalid
	}
	end, err := valueobject.ParseDateKey(endKey)
	if err != nil || end.Before(start) {
		return valueobject.PeriodRange{}, invalid
	}
	if end.After(start.AddDate(0, 0, profit.MaxReportDays-1)) {
		return valueobject.PeriodRange{}, invalid
	}
	return valueobject.NewPeriodRange(start, end), nil
}

func invalidRangeError() error {
	return domainerror.NewTrackerError(
		domainerror.ErrCodeInvalidReportRange,
		"range must be: thisMonth, last30days, last90days, thisYear, allTime, or custom",
		domainerror.ErrInvalidReportRange,
	)
}

// cleanTags trims the filter and drops blanks. An empty result disables filtering.
func cleanTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
