package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/integration/persistence/model"
)

// initialBalanceRepository implements the adapter.InitialBalanceRepository interface.
type initialBalanceRepository struct {
	db *gorm.DB
}

// NewInitialBalanceRepository creates a new initial balance repository instance.
func NewInitialBalanceRepository(db *gorm.DB) adapter.InitialBalanceRepository {
	return &initialBalanceRepository{
		db: db,
	}
}

// FindByDashboardID returns the initial balance or domainerror.ErrInitialBalanceNotFound.
func (r *initialBalanceRepository) FindByDashboardID(ctx context.Context, dashboardID uuid.UUID) (*entity.InitialBalance, error) {
	var balanceModel model.InitialBalanceModel
	result := r.db.WithContext(ctx).Where("dashboard_id = ?", dashboardID).First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInitialBalanceNotFound
		}
		return nil, result.Error
	}
	return balanceModel.ToEntity(), nil
}

// Upsert creates or replaces the initial balance of a dashboard.
func (r *initialBalanceRepository) Upsert(ctx context.Context, balance *entity.InitialBalance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dashboard_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance", "currency", "updated_at"}),
		}).
		Create(model.InitialBalanceFromEntity(balance)).Error
}
