package dto

import (
	"time"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// SetInitialBalanceRequest represents the request body for setting the initial balance.
type SetInitialBalanceRequest struct {
	Balance  *float64 `json:"balance" binding:"required"`
	Currency string   `json:"currency"`
}

// InitialBalanceResponse represents the initial balance in API responses.
type InitialBalanceResponse struct {
	DashboardID string    `json:"dashboard_id"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToInitialBalanceResponse converts a domain InitialBalance to an InitialBalanceResponse DTO.
func ToInitialBalanceResponse(b *entity.InitialBalance) InitialBalanceResponse {
	return InitialBalanceResponse{
		DashboardID: b.DashboardID.String(),
		Balance:     money(b.Balance),
		Currency:    string(b.Currency),
		UpdatedAt:   b.UpdatedAt,
	}
}
