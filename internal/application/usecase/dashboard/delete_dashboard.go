package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
)

// DeleteDashboardInput represents the input for deleting a dashboard.
type DeleteDashboardInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// DeleteDashboardUseCase handles dashboard deletion. Settings, initial balance, entries and
// goals of the dashboard are removed with it.
type DeleteDashboardUseCase struct {
	dashboardRepo adapter.DashboardRepository
	access        *Access
	cache         adapter.ViewCache
}

// NewDeleteDashboardUseCase creates a new DeleteDashboardUseCase instance.
func NewDeleteDashboardUseCase(dashboardRepo adapter.DashboardRepository, access *Access, cache adapter.ViewCache) *DeleteDashboardUseCase {
	return &DeleteDashboardUseCase{
		dashboardRepo: dashboardRepo,
		access:        access,
		cache:         cache,
	}
}

// Execute performs the deletion.
func (uc *DeleteDashboardUseCase) Execute(ctx context.Context, input DeleteDashboardInput) error {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return err
	}

	if err := uc.dashboardRepo.Delete(ctx, input.DashboardID); err != nil {
		return fmt.Errorf("failed to delete dashboard: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		slog.Warn("Failed to invalidate dashboard views", "dashboardID", input.DashboardID, "error", err)
	}
	return nil
}
