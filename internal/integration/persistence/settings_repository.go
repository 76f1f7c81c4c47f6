package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByDashboardID returns the stored settings, or nil when none were saved yet.
func (r *settingsRepository) FindByDashboardID(ctx context.Context, dashboardID uuid.UUID) (*entity.AppSettings, error) {
	var settingsModel model.AppSettingsModel
	result := r.db.WithContext(ctx).Where("dashboard_id = ?", dashboardID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Upsert creates or replaces the settings of a dashboard.
func (r *settingsRepository) Upsert(ctx context.Context, settings *entity.AppSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "dashboard_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"currency", "enable_notifications", "notification_time", "updated_at",
			}),
		}).
		Create(model.AppSettingsFromEntity(settings)).Error
}

// FindWithNotificationsEnabled returns every settings row that has reminders switched on.
func (r *settingsRepository) FindWithNotificationsEnabled(ctx context.Context) ([]*entity.AppSettings, error) {
	var models []model.AppSettingsModel
	result := r.db.WithContext(ctx).
		Where("enable_notifications = ?", true).
		Order("notification_time ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	settings := make([]*entity.AppSettings, len(models))
	for i := range models {
		settings[i] = models[i].ToEntity()
	}
	return settings, nil
}
