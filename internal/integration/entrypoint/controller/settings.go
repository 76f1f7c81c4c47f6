package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/usecase/balance"
	"github.com/profit-tracker/backend/internal/application/usecase/settings"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles the per-dashboard settings and initial balance endpoints.
type SettingsController struct {
	getSettingsUseCase    *settings.GetSettingsUseCase
	updateSettingsUseCase *settings.UpdateSettingsUseCase
	getBalanceUseCase     *balance.GetInitialBalanceUseCase
	setBalanceUseCase     *balance.SetInitialBalanceUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getSettingsUseCase *settings.GetSettingsUseCase,
	updateSettingsUseCase *settings.UpdateSettingsUseCase,
	getBalanceUseCase *balance.GetInitialBalanceUseCase,
	setBalanceUseCase *balance.SetInitialBalanceUseCase,
) *SettingsController {
	return &SettingsController{
		getSettingsUseCase:    getSettingsUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
		getBalanceUseCase:     getBalanceUseCase,
		setBalanceUseCase:     setBalanceUseCase,
	}
}

// GetSettings handles GET /dashboards/:id/settings requests.
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.getSettingsUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{
		DashboardID: dashboardID,
		UserID:      userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// UpdateSettings handles PUT /dashboards/:id/settings requests.
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		DashboardID:         dashboardID,
		UserID:              userID,
		Currency:            req.Currency,
		EnableNotifications: req.EnableNotifications,
		NotificationTime:    req.NotificationTime,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// GetInitialBalance handles GET /dashboards/:id/initial-balance requests.
func (c *SettingsController) GetInitialBalance(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.getBalanceUseCase.Execute(ctx.Request.Context(), balance.GetInitialBalanceInput{
		DashboardID: dashboardID,
		UserID:      userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInitialBalanceResponse(output.InitialBalance))
}

// SetInitialBalance handles PUT /dashboards/:id/initial-balance requests.
func (c *SettingsController) SetInitialBalance(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	var req dto.SetInitialBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBalance),
		})
		return
	}

	output, err := c.setBalanceUseCase.Execute(ctx.Request.Context(), balance.SetInitialBalanceInput{
		DashboardID: dashboardID,
		UserID:      userID,
		Balance:     decimal.NewFromFloat(*req.Balance),
		Currency:    req.Currency,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInitialBalanceResponse(output.InitialBalance))
}
