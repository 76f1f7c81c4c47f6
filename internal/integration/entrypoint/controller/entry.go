package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/usecase/entry"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/entrypoint/dto"
)

// EntryController handles daily entry endpoints.
type EntryController struct {
	listUseCase   *entry.ListEntriesUseCase
	upsertUseCase *entry.UpsertEntryUseCase
	tagsUseCase   *entry.ListTagsUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	listUseCase *entry.ListEntriesUseCase,
	upsertUseCase *entry.UpsertEntryUseCase,
	tagsUseCase *entry.ListTagsUseCase,
) *EntryController {
	return &EntryController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		tagsUseCase:   tagsUseCase,
	}
}

// List handles GET /dashboards/:id/entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), entry.ListEntriesInput{
		DashboardID: dashboardID,
		UserID:      userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryMapResponse(output.Entries))
}

// Upsert handles POST /dashboards/:id/entries requests. Saving a date that already has an
// entry replaces it.
func (c *EntryController) Upsert(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	var req dto.UpsertEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), entry.UpsertEntryInput{
		DashboardID:  dashboardID,
		UserID:       userID,
		DateKey:      req.Date,
		FinalBalance: decimal.NewFromFloat(*req.FinalBalance),
		Tags:         req.Tags,
		Notes:        req.Notes,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Tags handles GET /dashboards/:id/tags requests.
func (c *EntryController) Tags(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	dashboardID, ok := dashboardParam(ctx)
	if !ok {
		return
	}

	output, err := c.tagsUseCase.Execute(ctx.Request.Context(), entry.ListTagsInput{
		DashboardID: dashboardID,
		UserID:      userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	tags := output.Tags
	if tags == nil {
		tags = []string{}
	}
	ctx.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}
