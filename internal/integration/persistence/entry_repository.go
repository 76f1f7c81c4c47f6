package persistence

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new daily entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Upsert creates the entry or replaces the one stored for the same dashboard and date.
// On replace the stored ID and CreatedAt are kept and copied back into entry.
func (r *entryRepository) Upsert(ctx context.Context, entry *entity.DailyEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entryModel := model.DailyEntryFromEntity(entry)
		result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "dashboard_id"}, {Name: "date_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"final_balance", "tags", "notes", "updated_at",
			}),
		}).Create(entryModel)
		if result.Error != nil {
			return result.Error
		}

		var stored model.DailyEntryModel
		if err := tx.Where("dashboard_id = ? AND date_key = ?", entry.DashboardID, entry.DateKey).
			First(&stored).Error; err != nil {
			return err
		}
		entry.ID = stored.ID
		entry.CreatedAt = stored.CreatedAt
		return nil
	})
}

// FindByDashboardID returns every entry of a dashboard ordered by date.
func (r *entryRepository) FindByDashboardID(ctx context.Context, dashboardID uuid.UUID) ([]*entity.DailyEntry, error) {
	var models []model.DailyEntryModel
	result := r.db.WithContext(ctx).
		Where("dashboard_id = ?", dashboardID).
		Order("date_key ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.DailyEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries, nil
}

// FindByDashboardAndDate returns a single entry or domainerror.ErrEntryNotFound.
func (r *entryRepository) FindByDashboardAndDate(ctx context.Context, dashboardID uuid.UUID, dateKey string) (*entity.DailyEntry, error) {
	var entryModel model.DailyEntryModel
	result := r.db.WithContext(ctx).
		Where("dashboard_id = ? AND date_key = ?", dashboardID, dateKey).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// ListTags returns the distinct tags used across a dashboard's entries, sorted.
func (r *entryRepository) ListTags(ctx context.Context, dashboardID uuid.UUID) ([]string, error) {
	var models []model.DailyEntryModel
	result := r.db.WithContext(ctx).
		Select("tags").
		Where("dashboard_id = ?", dashboardID).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, m := range models {
		for _, tag := range m.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}
