// Package balance contains initial balance use cases.
package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// GetInitialBalanceInput represents the input for reading the initial balance.
type GetInitialBalanceInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
}

// GetInitialBalanceOutput represents the output of reading the initial balance.
type GetInitialBalanceOutput struct {
	InitialBalance *entity.InitialBalance
}

// GetInitialBalanceUseCase reads the initial balance of a dashboard.
type GetInitialBalanceUseCase struct {
	balanceRepo adapter.InitialBalanceRepository
	access      *dashboard.Access
}

// NewGetInitialBalanceUseCase creates a new GetInitialBalanceUseCase instance.
func NewGetInitialBalanceUseCase(balanceRepo adapter.InitialBalanceRepository, access *dashboard.Access) *GetInitialBalanceUseCase {
	return &GetInitialBalanceUseCase{
		balanceRepo: balanceRepo,
		access:      access,
	}
}

// Execute reads the initial balance. It fails with ErrInitialBalanceNotFound when it was
// never set.
func (uc *GetInitialBalanceUseCase) Execute(ctx context.Context, input GetInitialBalanceInput) (*GetInitialBalanceOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	balance, err := uc.balanceRepo.FindByDashboardID(ctx, input.DashboardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInitialBalanceNotFound) {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInitialBalanceNotFound,
				"initial balance not set for this dashboard",
				domainerror.ErrInitialBalanceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find initial balance: %w", err)
	}

	return &GetInitialBalanceOutput{InitialBalance: balance}, nil
}
