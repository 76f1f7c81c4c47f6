// Package tracker contains the read-side use cases that derive profit, goal progress and
// daily targets from a dashboard's entries.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
)

// Snapshot is a consistent read of everything the tracker views need for one dashboard.
type Snapshot struct {
	Dashboard *entity.Dashboard
	Entries   profit.Entries
	Initial   decimal.Decimal
	Currency  entity.Currency
	Goals     []*entity.Goal
	Series    *profit.Series
}

// SnapshotLoader reads a dashboard snapshot after checking ownership.
type SnapshotLoader struct {
	access       *dashboard.Access
	entryRepo    adapter.EntryRepository
	balanceRepo  adapter.InitialBalanceRepository
	goalRepo     adapter.GoalRepository
	settingsRepo adapter.SettingsRepository
}

// NewSnapshotLoader creates a new SnapshotLoader instance.
func NewSnapshotLoader(
	access *dashboard.Access,
	entryRepo adapter.EntryRepository,
	balanceRepo adapter.InitialBalanceRepository,
	goalRepo adapter.GoalRepository,
	settingsRepo adapter.SettingsRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		access:       access,
		entryRepo:    entryRepo,
		balanceRepo:  balanceRepo,
		goalRepo:     goalRepo,
		settingsRepo: settingsRepo,
	}
}

// Authorize checks that the user owns the dashboard.
func (l *SnapshotLoader) Authorize(ctx context.Context, dashboardID, userID uuid.UUID) (*entity.Dashboard, error) {
	return l.access.Authorize(ctx, dashboardID, userID)
}

// Load checks ownership and reads the snapshot.
func (l *SnapshotLoader) Load(ctx context.Context, dashboardID, userID uuid.UUID) (*Snapshot, error) {
	d, err := l.access.Authorize(ctx, dashboardID, userID)
	if err != nil {
		return nil, err
	}
	return l.Read(ctx, d)
}

// Read loads the snapshot of an already authorized dashboard. A dashboard without an
// initial balance starts from zero. The currency comes from the settings, then the initial
// balance, then the default.
func (l *SnapshotLoader) Read(ctx context.Context, d *entity.Dashboard) (*Snapshot, error) {
	dashboardID := d.ID

	list, err := l.entryRepo.FindByDashboardID(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	initial := decimal.Zero
	currency := entity.DefaultCurrency
	balance, err := l.balanceRepo.FindByDashboardID(ctx, dashboardID)
	switch {
	case err == nil:
		initial = balance.Balance
		if balance.Currency.IsValid() {
			currency = balance.Currency
		}
	case !errors.Is(err, domainerror.ErrInitialBalanceNotFound):
		return nil, fmt.Errorf("failed to load initial balance: %w", err)
	}

	settings, err := l.settingsRepo.FindByDashboardID(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings != nil && settings.Currency.IsValid() {
		currency = settings.Currency
	}

	goals, err := l.goalRepo.FindByDashboardID(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	entries := profit.NewEntries(list)
	return &Snapshot{
		Dashboard: d,
		Entries:   entries,
		Initial:   initial,
		Currency:  currency,
		Goals:     goals,
		Series:    profit.NewSeries(entries, initial),
	}, nil
}
