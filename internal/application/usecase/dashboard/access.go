// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// Access resolves a dashboard and checks that the caller owns it. Every use case scoped to a
// dashboard goes through it first.
type Access struct {
	dashboardRepo adapter.DashboardRepository
}

// NewAccess creates a new Access instance.
func NewAccess(dashboardRepo adapter.DashboardRepository) *Access {
	return &Access{dashboardRepo: dashboardRepo}
}

// Authorize returns the dashboard when it exists and belongs to userID.
func (a *Access) Authorize(ctx context.Context, dashboardID, userID uuid.UUID) (*entity.Dashboard, error) {
	dashboard, err := a.dashboardRepo.FindByID(ctx, dashboardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDashboardNotFound) {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeDashboardNotFound,
				"dashboard not found",
				domainerror.ErrDashboardNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find dashboard: %w", err)
	}

	if !dashboard.IsOwnedBy(userID) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardAccessDenied,
			"you do not have access to this dashboard",
			domainerror.ErrDashboardAccessDenied,
		)
	}

	return dashboard, nil
}
