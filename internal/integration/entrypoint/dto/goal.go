package dto

import (
	"time"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Type      string   `json:"type" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
	AppliesTo string   `json:"applies_to" binding:"required"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Type      *string  `json:"type,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	AppliesTo *string  `json:"applies_to,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	AppliesTo string    `json:"applies_to"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:        g.ID.String(),
		Type:      string(g.Type),
		Amount:    money(g.Amount),
		AppliesTo: g.AppliesTo,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, len(goals)),
	}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g)
	}
	return response
}
