package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// AppSettingsModel represents the app_settings table, one row per dashboard.
type AppSettingsModel struct {
	DashboardID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;index;not null"`
	Currency            string    `gorm:"type:varchar(3);not null;default:'BRL'"`
	EnableNotifications bool      `gorm:"not null;default:false;index"`
	NotificationTime    string    `gorm:"type:varchar(5);not null;default:'18:00'"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the AppSettingsModel.
func (AppSettingsModel) TableName() string {
	return "app_settings"
}

// ToEntity converts an AppSettingsModel to a domain AppSettings entity.
func (m *AppSettingsModel) ToEntity() *entity.AppSettings {
	return &entity.AppSettings{
		DashboardID:         m.DashboardID,
		UserID:              m.UserID,
		Currency:            entity.Currency(m.Currency),
		EnableNotifications: m.EnableNotifications,
		NotificationTime:    m.NotificationTime,
		UpdatedAt:           m.UpdatedAt,
	}
}

// AppSettingsFromEntity creates an AppSettingsModel from a domain AppSettings entity.
func AppSettingsFromEntity(s *entity.AppSettings) *AppSettingsModel {
	return &AppSettingsModel{
		DashboardID:         s.DashboardID,
		UserID:              s.UserID,
		Currency:            string(s.Currency),
		EnableNotifications: s.EnableNotifications,
		NotificationTime:    s.NotificationTime,
		UpdatedAt:           s.UpdatedAt,
	}
}
