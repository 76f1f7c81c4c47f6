package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// DashboardModel represents the dashboards table. Names are unique per user.
type DashboardModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dashboards_user_name,priority:1"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_dashboards_user_name,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DashboardModel.
func (DashboardModel) TableName() string {
	return "dashboards"
}

// ToEntity converts a DashboardModel to a domain Dashboard entity.
func (m *DashboardModel) ToEntity() *entity.Dashboard {
	return &entity.Dashboard{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DashboardFromEntity creates a DashboardModel from a domain Dashboard entity.
func DashboardFromEntity(d *entity.Dashboard) *DashboardModel {
	return &DashboardModel{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
