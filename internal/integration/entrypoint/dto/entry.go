package dto

import (
	"time"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// UpsertEntryRequest represents the request body for saving a daily entry.
type UpsertEntryRequest struct {
	Date         string   `json:"date" binding:"required"`
	FinalBalance *float64 `json:"final_balance" binding:"required"`
	Tags         []string `json:"tags"`
	Notes        string   `json:"notes"`
}

// EntryResponse represents a daily entry in API responses.
type EntryResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	FinalBalance float64   `json:"final_balance"`
	Tags         []string  `json:"tags"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EntryMapResponse lists the entries of a dashboard keyed by date.
type EntryMapResponse struct {
	Entries map[string]EntryResponse `json:"entries"`
}

// TagListResponse lists the distinct tags of a dashboard.
type TagListResponse struct {
	Tags []string `json:"tags"`
}

// ToEntryResponse converts a domain DailyEntry to an EntryResponse DTO.
func ToEntryResponse(e *entity.DailyEntry) EntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryResponse{
		ID:           e.ID.String(),
		Date:         e.DateKey,
		FinalBalance: money(e.FinalBalance),
		Tags:         tags,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEntryMapResponse converts the keyed entries of a dashboard to an EntryMapResponse DTO.
func ToEntryMapResponse(entries map[string]*entity.DailyEntry) EntryMapResponse {
	response := EntryMapResponse{
		Entries: make(map[string]EntryResponse, len(entries)),
	}
	for key, e := range entries {
		response.Entries[key] = ToEntryResponse(e)
	}
	return response
}
