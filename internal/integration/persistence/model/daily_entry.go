package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// DailyEntryModel represents the daily_entries table. There is at most one row per
// dashboard and date key.
type DailyEntryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DashboardID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_entries_dashboard_date,priority:1"`
	UserID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	DateKey      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_entries_dashboard_date,priority:2"`
	FinalBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Tags         pq.StringArray  `gorm:"type:text[]"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DailyEntryModel.
func (DailyEntryModel) TableName() string {
	return "daily_entries"
}

// ToEntity converts a DailyEntryModel to a domain DailyEntry entity.
func (m *DailyEntryModel) ToEntity() *entity.DailyEntry {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &entity.DailyEntry{
		ID:           m.ID,
		DashboardID:  m.DashboardID,
		UserID:       m.UserID,
		DateKey:      m.DateKey,
		FinalBalance: m.FinalBalance,
		Tags:         tags,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// DailyEntryFromEntity creates a DailyEntryModel from a domain DailyEntry entity.
func DailyEntryFromEntity(e *entity.DailyEntry) *DailyEntryModel {
	tags := pq.StringArray(e.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}
	return &DailyEntryModel{
		ID:           e.ID,
		DashboardID:  e.DashboardID,
		UserID:       e.UserID,
		DateKey:      e.DateKey,
		FinalBalance: e.FinalBalance,
		Tags:         tags,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
