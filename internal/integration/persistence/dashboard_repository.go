package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the adapter.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) adapter.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// Create creates a new dashboard.
func (r *dashboardRepository) Create(ctx context.Context, dashboard *entity.Dashboard) error {
	result := r.db.WithContext(ctx).Create(model.DashboardFromEntity(dashboard))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDashboardNameExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a dashboard by its ID.
func (r *dashboardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dashboard, error) {
	var dashboardModel model.DashboardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&dashboardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDashboardNotFound
		}
		return nil, result.Error
	}
	return dashboardModel.ToEntity(), nil
}

// FindByUserID retrieves all dashboards of a user ordered by creation time.
func (r *dashboardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Dashboard, error) {
	var models []model.DashboardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	dashboards := make([]*entity.Dashboard, len(models))
	for i := range models {
		dashboards[i] = models[i].ToEntity()
	}
	return dashboards, nil
}

// ExistsByUserAndName checks whether the user owns another dashboard with the name.
func (r *dashboardRepository) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.DashboardModel{}).
		Where("user_id = ? AND name = ?", userID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves the dashboard name.
func (r *dashboardRepository) Update(ctx context.Context, dashboard *entity.Dashboard) error {
	result := r.db.WithContext(ctx).
		Model(&model.DashboardModel{}).
		Where("id = ?", dashboard.ID).
		Updates(map[string]any{
			"name":       dashboard.Name,
			"updated_at": dashboard.UpdatedAt,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDashboardNameExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDashboardNotFound
	}
	return nil
}

// Delete removes the dashboard together with its settings, initial balance, entries and goals.
func (r *dashboardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []any{
			&model.GoalModel{},
			&model.DailyEntryModel{},
			&model.InitialBalanceModel{},
			&model.AppSettingsModel{},
		}
		for _, m := range dependents {
			if err := tx.Where("dashboard_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.DashboardModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrDashboardNotFound
		}
		return nil
	})
}
