package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DashboardID uuid.UUID       `gorm:"type:uuid;not null;index:idx_goals_dashboard_applies_to,priority:1"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AppliesTo   string          `gorm:"type:varchar(10);not null;index:idx_goals_dashboard_applies_to,priority:2"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:          m.ID,
		DashboardID: m.DashboardID,
		UserID:      m.UserID,
		Type:        entity.GoalType(m.Type),
		Amount:      m.Amount,
		AppliesTo:   m.AppliesTo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:          goal.ID,
		DashboardID: goal.DashboardID,
		UserID:      goal.UserID,
		Type:        string(goal.Type),
		Amount:      goal.Amount,
		AppliesTo:   goal.AppliesTo,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}
