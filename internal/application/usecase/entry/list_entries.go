// Package entry contains daily entry use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// ListEntriesOutput maps date keys to entries.
type ListEntriesOutput struct {
	Entries map[string]*entity.DailyEntry
}

// ListEntriesUseCase lists every entry of a dashboard keyed by date.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
	access    *dashboard.Access
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository, access *dashboard.Access) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		access:    access,
	}
}

// Execute lists the entries.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.FindByDashboardID(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	byDate := make(map[string]*entity.DailyEntry, len(entries))
	for _, e := range entries {
		byDate[e.DateKey] = e
	}
	return &ListEntriesOutput{Entries: byDate}, nil
}
