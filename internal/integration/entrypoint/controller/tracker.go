package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/profit-tracker/backend/internal/application/usecase/tracker"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/dto"
)

// TrackerController serves the computed views of a dashboard: the month calendar, single
// day results, period summaries, reports and exports.
type TrackerController struct {
	calendarUseCase *tracker.GetCalendarUseCase
	dayUseCase      *tracker.GetDayUseCase
	summaryUseCase  *tracker.GetPeriodSummaryUseCase
	reportUseCase   *tracker.GetReportUseCase
	exportUseCase   *tracker.ExportEntriesUseCase
}

// NewTrackerController creates a new tracker controller instance.
func NewTrackerController(
	calendarUseCase *tracker.GetCalendarUseCase,
	dayUseCase *tracker.GetDayUseCase,
	summaryUseCase *tracker.GetPeriodSummaryUseCase,
	reportUseCase *tracker.GetReportUseCase,
	exportUseCase *tracker.ExportEntriesUseCase,
) *TrackerController {
	return &TrackerController{
		calendarUseCase: calendarUseCase,
		dayUseCase:      dayUseCase,
		summaryUseCase:  summaryUseCase,
		reportUseCase:   reportUseCase,
		exportUseCase:   exportUseCase,
	}
}

// Calendar handles GET /dashboards/:id/calendar requests.
func (c *TrackerController) Calendar(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), tracker.GetCalendarInput{
		DashboardID: dashboardID,
		UserID:      userID,
		Month:       ctx.Query("month"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Header("X-Cache", cacheHeader(output.Cached))
	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output.Calendar))
}

// Day handles GET /dashboards/:id/days/:date requests.
func (c *TrackerController) Day(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.dayUseCase.Execute(ctx.Request.Context(), tracker.GetDayInput{
		DashboardID: dashboardID,
		UserID:      userID,
		DateKey:     ctx.Param("date"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDayResponse(output))
}

// Summary handles GET /dashboards/:id/summary requests.
func (c *TrackerController) Summary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), tracker.GetPeriodSummaryInput{
		DashboardID: dashboardID,
		UserID:      userID,
		Type:        ctx.DefaultQuery("type", "monthly"),
		AppliesTo:   ctx.Query("applies_to"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodSummaryResponse(output))
}

// Report handles GET /dashboards/:id/reports requests. Tags may be repeated or comma
// separated.
func (c *TrackerController) Report(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), tracker.GetReportInput{
		DashboardID: dashboardID,
		UserID:      userID,
		Range:       ctx.Query("range"),
		Start:       ctx.Query("start"),
		End:         ctx.Query("end"),
		Compare:     ctx.Query("compare"),
		Tags:        splitTags(ctx.QueryArray("tags")),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportWithCompareResponse(output))
}

// Export handles GET /dashboards/:id/export requests.
func (c *TrackerController) Export(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), tracker.ExportEntriesInput{
		DashboardID: dashboardID,
		UserID:      userID,
		Format:      ctx.Query("format"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+strconv.Quote(output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Body)
}

func splitTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func cacheHeader(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}
