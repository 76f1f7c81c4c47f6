package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// InitialBalanceModel represents the initial_balances table, one row per dashboard.
type InitialBalanceModel struct {
	DashboardID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'BRL'"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InitialBalanceModel.
func (InitialBalanceModel) TableName() string {
	return "initial_balances"
}

// ToEntity converts an InitialBalanceModel to a domain InitialBalance entity.
func (m *InitialBalanceModel) ToEntity() *entity.InitialBalance {
	return &entity.InitialBalance{
		DashboardID: m.DashboardID,
		UserID:      m.UserID,
		Balance:     m.Balance,
		Currency:    entity.Currency(m.Currency),
		UpdatedAt:   m.UpdatedAt,
	}
}

// InitialBalanceFromEntity creates an InitialBalanceModel from a domain InitialBalance entity.
func InitialBalanceFromEntity(b *entity.InitialBalance) *InitialBalanceModel {
	return &InitialBalanceModel{
		DashboardID: b.DashboardID,
		UserID:      b.UserID,
		Balance:     b.Balance,
		Currency:    string(b.Currency),
		UpdatedAt:   b.UpdatedAt,
	}
}
