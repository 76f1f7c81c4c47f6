package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitialBalance is the anchor balance of a dashboard, the balance as of the day before
// any entry exists.
type InitialBalance struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Balance     decimal.Decimal
	Currency    Currency
	UpdatedAt   time.Time
}
