package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// CreateDashboardRequest represents the request body for dashboard creation.
type CreateDashboardRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameDashboardRequest represents the request body for renaming a dashboard.
type RenameDashboardRequest struct {
	Name string `json:"name" binding:"required"`
}

// DashboardResponse represents a single dashboard in API responses.
type DashboardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DashboardListResponse represents the response for listing dashboards.
type DashboardListResponse struct {
	Dashboards []DashboardResponse `json:"dashboards"`
}

// ToDashboardResponse converts a domain Dashboard entity to a DashboardResponse DTO.
func ToDashboardResponse(d *entity.Dashboard) DashboardResponse {
	return DashboardResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDashboardListResponse converts a list of dashboards to a DashboardListResponse DTO.
func ToDashboardListResponse(dashboards []*entity.Dashboard) DashboardListResponse {
	response := DashboardListResponse{
		Dashboards: make([]DashboardResponse, len(dashboards)),
	}
	for i, d := range dashboards {
		response.Dashboards[i] = ToDashboardResponse(d)
	}
	return response
}

// money converts a decimal amount to the float64 used on the wire.
func money(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// nullMoney converts an optional decimal amount, null when invalid.
func nullMoney(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := money(d.Decimal)
	return &f
}
