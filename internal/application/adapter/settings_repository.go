package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for per-dashboard settings persistence.
type SettingsRepository interface {
	// FindByDashboardID returns the stored settings, or nil when none were saved yet.
	FindByDashboardID(ctx context.Context, dashboardID uuid.UUID) (*entity.AppSettings, error)

	// Upsert creates or replaces the settings of a dashboard.
	Upsert(ctx context.Context, settings *entity.AppSettings) error

	// FindWithNotificationsEnabled returns every settings row that has reminders switched on.
	FindWithNotificationsEnabled(ctx context.Context) ([]*entity.AppSettings, error)
}
