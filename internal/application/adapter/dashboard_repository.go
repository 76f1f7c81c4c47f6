package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// DashboardRepository defines the interface for dashboard persistence operations.
type DashboardRepository interface {
	// Create creates a new dashboard.
	Create(ctx context.Context, dashboard *entity.Dashboard) error

	// FindByID retrieves a dashboard by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dashboard, error)

	// FindByUserID retrieves all dashboards of a user ordered by creation time.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Dashboard, error)

	// ExistsByUserAndName checks whether the user owns another dashboard with the name.
	// excludeID may be uuid.Nil.
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// Update saves the dashboard name.
	Update(ctx context.Context, dashboard *entity.Dashboard) error

	// Delete removes the dashboard together with its settings, initial balance, entries and goals.
	Delete(ctx context.Context, id uuid.UUID) error
}
