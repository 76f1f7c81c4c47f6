package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// InitialBalanceRepository defines the interface for initial balance persistence.
type InitialBalanceRepository interface {
	// FindByDashboardID returns the initial balance or domainerror.ErrInitialBalanceNotFound.
	FindByDashboardID(ctx context.Context, dashboardID uuid.UUID) (*entity.InitialBalance, error)

	// Upsert creates or replaces the initial balance of a dashboard.
	Upsert(ctx context.Context, balance *entity.InitialBalance) error
}
