package entity

import (
	"time"

	"github.com/google/uuid"
)

// DashboardNameMaxLength is the maximum length of a dashboard name.
const DashboardNameMaxLength = 100

// Dashboard is an isolated namespace of balances, entries and goals owned by one user.
type Dashboard struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDashboard creates a new Dashboard entity.
func NewDashboard(userID uuid.UUID, name string) *Dashboard {
	now := time.Now().UTC()
	return &Dashboard{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether the dashboard belongs to the given user.
func (d *Dashboard) IsOwnedBy(userID uuid.UUID) bool {
	return d.UserID == userID
}
