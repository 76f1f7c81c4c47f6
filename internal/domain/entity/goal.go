package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the period a profit goal applies to.
type GoalType string

const (
	GoalTypeDaily   GoalType = "daily"
	GoalTypeWeekly  GoalType = "weekly"
	GoalTypeMonthly GoalType = "monthly"
)

// IsValid reports whether the goal type is supported.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeDaily, GoalTypeWeekly, GoalTypeMonthly:
		return true
	}
	return false
}

// Goal represents a target profit for a period. AppliesTo is a date key for daily goals,
// an ISO week id (YYYY-Www) for weekly goals and a month id (YYYY-MM) for monthly goals.
type Goal struct {
	ID          uuid.UUID
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Type        GoalType
	Amount      decimal.Decimal
	AppliesTo   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID, dashboardID uuid.UUID, goalType GoalType, amount decimal.Decimal, appliesTo string) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:          uuid.New(),
		DashboardID: dashboardID,
		UserID:      userID,
		Type:        goalType,
		Amount:      amount,
		AppliesTo:   appliesTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
