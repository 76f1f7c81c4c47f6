package entity

import (
	"time"

	"github.com/google/uuid"
)

// Currency is an ISO currency code supported by the tracker.
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// IsValid reports whether the currency is one of the supported codes.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBRL, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Defaults applied when a dashboard has no stored settings.
const (
	DefaultCurrency         = CurrencyBRL
	DefaultNotificationTime = "18:00"
)

// AppSettings holds the per-dashboard preferences.
type AppSettings struct {
	DashboardID         uuid.UUID
	UserID              uuid.UUID
	Currency            Currency
	EnableNotifications bool
	NotificationTime    string // HH:MM in the server timezone
	UpdatedAt           time.Time
}

// DefaultAppSettings returns the settings used before the user saves any.
func DefaultAppSettings(userID, dashboardID uuid.UUID) *AppSettings {
	return &AppSettings{
		DashboardID:         dashboardID,
		UserID:              userID,
		Currency:            DefaultCurrency,
		EnableNotifications: false,
		NotificationTime:    DefaultNotificationTime,
	}
}

// NotificationClock returns the hour and minute of NotificationTime.
// ok is false when the stored value is not a valid HH:MM.
func (s *AppSettings) NotificationClock() (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", s.NotificationTime)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
