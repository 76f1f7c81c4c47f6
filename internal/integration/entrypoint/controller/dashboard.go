package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	listUseCase   *dashboard.ListDashboardsUseCase
	createUseCase *dashboard.CreateDashboardUseCase
	getUseCase    *dashboard.GetDashboardUseCase
	renameUseCase *dashboard.RenameDashboardUseCase
	deleteUseCase *dashboard.DeleteDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	listUseCase *dashboard.ListDashboardsUseCase,
	createUseCase *dashboard.CreateDashboardUseCase,
	getUseCase *dashboard.GetDashboardUseCase,
	renameUseCase *dashboard.RenameDashboardUseCase,
	deleteUseCase *dashboard.DeleteDashboardUseCase,
) *DashboardController {
	return &DashboardController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		renameUseCase: renameUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /dashboards requests.
func (c *DashboardController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), dashboard.ListDashboardsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardListResponse(output.Dashboards))
}

// Create handles POST /dashboards requests.
func (c *DashboardController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateDashboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeDashboardNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), dashboard.CreateDashboardInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDashboardResponse(output.Dashboard))
}

// Get handles GET /dashboards/:id requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		DashboardID: dashboardID,
		UserID:      userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output.Dashboard))
}

// Rename handles PATCH /dashboards/:id requests.
func (c *DashboardController) Rename(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	var req dto.RenameDashboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeDashboardNameRequired),
		})
		return
	}

	output, err := c.renameUseCase.Execute(ctx.Request.Context(), dashboard.RenameDashboardInput{
		DashboardID: dashboardID,
		UserID:      userID,
		Name:        req.Name,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output.Dashboard))
}

// Delete handles DELETE /dashboards/:id requests.
func (c *DashboardController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), dashboard.DeleteDashboardInput{
		DashboardID: dashboardID,
		UserID:      userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
