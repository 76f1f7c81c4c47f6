package entry

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// MaxTagLength is the maximum length of a single tag.
const MaxTagLength = 50

// UpsertEntryInput represents the input for saving a daily entry.
type UpsertEntryInput struct {
	DashboardID  uuid.UUID
	UserID       uuid.UUID
	DateKey      string
	FinalBalance decimal.Decimal
	Tags         []string
	Notes        string
}

// UpsertEntryOutput represents the output of saving a daily entry.
type UpsertEntryOutput struct {
	Entry *entity.DailyEntry
}

// UpsertEntryUseCase records the closing balance of a day, replacing any entry already
// stored for the same date.
type UpsertEntryUseCase struct {
	entryRepo adapter.EntryRepository
	access    *dashboard.Access
	cache     adapter.ViewCache
}

// NewUpsertEntryUseCase creates a new UpsertEntryUseCase instance.
func NewUpsertEntryUseCase(entryRepo adapter.EntryRepository, access *dashboard.Access, cache adapter.ViewCache) *UpsertEntryUseCase {
	return &UpsertEntryUseCase{
		entryRepo: entryRepo,
		access:    access,
		cache:     cache,
	}
}

// Execute validates and stores the entry.
func (uc *UpsertEntryUseCase) Execute(ctx context.Context, input UpsertEntryInput) (*UpsertEntryOutput, error) {
	if !valueobject.IsValidDateKey(input.DateKey) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidDateKey,
			"invalid date_key format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateKey,
		)
	}

	finalBalance := input.FinalBalance.Round(2)
	if finalBalance.IsNegative() || finalBalance.GreaterThan(entity.MaxAmount) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidFinalBalance,
			"final balance must be between 0 and "+entity.MaxAmount.StringFixed(2),
			domainerror.ErrInvalidFinalBalance,
		)
	}

	tags, err := normalizeTags(input.Tags)
	if err != nil {
		return nil, err
	}

	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	entry := entity.NewDailyEntry(
		input.UserID,
		input.DashboardID,
		input.DateKey,
		finalBalance,
		tags,
		strings.TrimSpace(input.Notes),
	)
	if err := uc.entryRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	// A new balance changes the profit of this day and the following one, and every
	// target derived from them.
	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		return nil, fmt.Errorf("failed to invalidate cached views: %w", err)
	}

	return &UpsertEntryOutput{Entry: entry}, nil
}

// normalizeTags trims tags and drops duplicates, keeping the first occurrence.
func normalizeTags(raw []string) ([]string, error) {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" || utf8.RuneCountInString(tag) > MaxTagLength {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeInvalidTag,
				"tags must be non-empty and at most 50 characters",
				domainerror.ErrInvalidTag,
			)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}
