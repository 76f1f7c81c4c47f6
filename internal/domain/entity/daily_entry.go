package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a stored balance or goal can hold, two decimal places
// with thirteen integer digits.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// DailyEntry is one user-recorded end-of-day account balance for one dashboard.
// At most one entry exists per dashboard and DateKey.
type DailyEntry struct {
	ID           uuid.UUID
	DashboardID  uuid.UUID
	UserID       uuid.UUID
	DateKey      string // YYYY-MM-DD
	FinalBalance decimal.Decimal
	Tags         []string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDailyEntry creates a new DailyEntry entity.
func NewDailyEntry(userID, dashboardID uuid.UUID, dateKey string, finalBalance decimal.Decimal, tags []string, notes string) *DailyEntry {
	now := time.Now().UTC()
	if tags == nil {
		tags = []string{}
	}
	return &DailyEntry{
		ID:           uuid.New(),
		DashboardID:  dashboardID,
		UserID:       userID,
		DateKey:      dateKey,
		FinalBalance: finalBalance,
		Tags:         tags,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasTag reports whether the entry carries the given tag.
func (e DailyEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the entry carries at least one of the given tags.
// An empty filter matches every entry.
func (e DailyEntry) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if e.HasTag(tag) {
			return true
		}
	}
	return false
}
