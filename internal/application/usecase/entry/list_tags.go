package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
)

// ListTagsInput represents the input for listing the tags in use.
type ListTagsInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// ListTagsOutput represents the output of listing the tags in use.
type ListTagsOutput struct {
	Tags []string
}

// ListTagsUseCase returns the distinct tags of a dashboard, used to build report filters.
type ListTagsUseCase struct {
	entryRepo adapter.EntryRepository
	access    *dashboard.Access
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(entryRepo adapter.EntryRepository, access *dashboard.Access) *ListTagsUseCase {
	return &ListTagsUseCase{
		entryRepo: entryRepo,
		access:    access,
	}
}

// Execute lists the tags.
func (uc *ListTagsUseCase) Execute(ctx context.Context, input ListTagsInput) (*ListTagsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	tags, err := uc.entryRepo.ListTags(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return &ListTagsOutput{Tags: tags}, nil
}
