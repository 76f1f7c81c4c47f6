package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/middleware"
)

// requireUser returns the authenticated user, answering 401 when there is none.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// dashboardParam parses the :id path parameter, answering 400 when it is not a UUID.
func dashboardParam(ctx *gin.Context) (uuid.UUID, bool) {
	dashboardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid dashboard ID format",
			Code:  string(domainerror.ErrCodeInvalidDashboardID),
		})
		return uuid.Nil, false
	}
	return dashboardID, true
}

// handleDomainError maps the coded errors of the dashboard scoped use cases to HTTP responses.
func handleDomainError(ctx *gin.Context, err error) {
	var (
		dashboardErr *domainerror.DashboardError
		entryErr     *domainerror.EntryError
		goalErr      *domainerror.GoalError
		trackerErr   *domainerror.TrackerError
	)

	switch {
	case errors.As(err, &dashboardErr):
		respondCoded(ctx, getStatusCodeForDashboardError(dashboardErr.Code), dashboardErr.Message, string(dashboardErr.Code), err)
	case errors.As(err, &entryErr):
		respondCoded(ctx, getStatusCodeForEntryError(entryErr.Code), entryErr.Message, string(entryErr.Code), err)
	case errors.As(err, &goalErr):
		respondCoded(ctx, getStatusCodeForGoalError(goalErr.Code), goalErr.Message, string(goalErr.Code), err)
	case errors.As(err, &trackerErr):
		respondCoded(ctx, getStatusCodeForTrackerError(trackerErr.Code), trackerErr.Message, string(trackerErr.Code), err)
	default:
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respondCoded(ctx *gin.Context, status int, message, code string, err error) {
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "code", code, "error", err)
		message = "An internal error occurred"
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeDashboardNameRequired,
		domainerror.ErrCodeDashboardNameTooLong,
		domainerror.ErrCodeInvalidBalance,
		domainerror.ErrCodeInvalidCurrency,
		domainerror.ErrCodeInvalidNotificationTime,
		domainerror.ErrCodeInvalidDashboardID:
		return http.StatusBadRequest
	case domainerror.ErrCodeDashboardNotFound,
		domainerror.ErrCodeInitialBalanceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDashboardNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeDashboardAccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateKey,
		domainerror.ErrCodeInvalidFinalBalance,
		domainerror.ErrCodeInvalidTag,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidAppliesTo,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidGoalID:
		return http.StatusBadRequest
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func getStatusCodeForTrackerError(code domainerror.TrackerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidDay,
		domainerror.ErrCodeInvalidPeriodType,
		domainerror.ErrCodeInvalidPeriodID,
		domainerror.ErrCodeInvalidReportRange,
		domainerror.ErrCodeInvalidCustomRange,
		domainerror.ErrCodeInvalidExportFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
