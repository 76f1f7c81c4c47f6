package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// EntryRepository defines the interface for daily entry persistence.
type EntryRepository interface {
	// Upsert creates the entry or replaces the one stored for the same dashboard and date.
	Upsert(ctx context.Context, entry *entity.DailyEntry) error

	// FindByDashboardID returns every entry of a dashboard ordered by date.
	FindByDashboardID(ctx context.Context, dashboardID uuid.UUID) ([]*entity.DailyEntry, error)

	// FindByDashboardAndDate returns a single entry or domainerror.ErrEntryNotFound.
	FindByDashboardAndDate(ctx context.Context, dashboardID uuid.UUID, dateKey string) (*entity.DailyEntry, error)

	// ListTags returns the distinct tags used across a dashboard's entries, sorted.
	ListTags(ctx context.Context, dashboardID uuid.UUID) ([]string, error)
}
