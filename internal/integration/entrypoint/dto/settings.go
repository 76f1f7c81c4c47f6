package dto

import (
	"time"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for a settings update. Omitted fields
// keep their current value.
type UpdateSettingsRequest struct {
	Currency            *string `json:"currency,omitempty"`
	EnableNotifications *bool   `json:"enable_notifications,omitempty"`
	NotificationTime    *string `json:"notification_time,omitempty"`
}

// SettingsResponse represents the dashboard settings in API responses.
type SettingsResponse struct {
	DashboardID         string     `json:"dashboard_id"`
	Currency            string     `json:"currency"`
	EnableNotifications bool       `json:"enable_notifications"`
	NotificationTime    string     `json:"notification_time"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// ToSettingsResponse converts domain AppSettings to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.AppSettings) SettingsResponse {
	response := SettingsResponse{
		DashboardID:         s.DashboardID.String(),
		Currency:            string(s.Currency),
		EnableNotifications: s.EnableNotifications,
		NotificationTime:    s.NotificationTime,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}
