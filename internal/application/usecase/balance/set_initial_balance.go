package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// SetInitialBalanceInput represents the input for setting the initial balance.
type SetInitialBalanceInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Balance     decimal.Decimal
	Currency    string // optional, defaults to BRL
}

// SetInitialBalanceOutput represents the output of setting the initial balance.
type SetInitialBalanceOutput struct {
	InitialBalance *entity.InitialBalance
}

// SetInitialBalanceUseCase creates or replaces the initial balance of a dashboard.
type SetInitialBalanceUseCase struct {
	balanceRepo adapter.InitialBalanceRepository
	access      *dashboard.Access
	cache       adapter.ViewCache
}

// NewSetInitialBalanceUseCase creates a new SetInitialBalanceUseCase instance.
func NewSetInitialBalanceUseCase(balanceRepo adapter.InitialBalanceRepository, access *dashboard.Access, cache adapter.ViewCache) *SetInitialBalanceUseCase {
	return &SetInitialBalanceUseCase{
		balanceRepo: balanceRepo,
		access:      access,
		cache:       cache,
	}
}

// Execute stores the initial balance. Every derived profit shifts with it, so the dashboard's
// cached views are dropped.
func (uc *SetInitialBalanceUseCase) Execute(ctx context.Context, input SetInitialBalanceInput) (*SetInitialBalanceOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.DashboardID, input.UserID); err != nil {
		return nil, err
	}

	amount := input.Balance.Round(2)
	if amount.IsNegative() || amount.GreaterThan(entity.MaxAmount) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidBalance,
			"balance must be between 0 and "+entity.MaxAmount.StringFixed(2),
			domainerror.ErrInvalidBalance,
		)
	}

	currency := entity.DefaultCurrency
	if input.Currency != "" {
		currency = entity.Currency(input.Currency)
		if !currency.IsValid() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidCurrency,
				"currency must be one of: BRL, USD, EUR",
				domainerror.ErrInvalidCurrency,
			)
		}
	}

	balance := &entity.InitialBalance{
		DashboardID: input.DashboardID,
		UserID:      input.UserID,
		Balance:     amount,
		Currency:    currency,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := uc.balanceRepo.Upsert(ctx, balance); err != nil {
		return nil, fmt.Errorf("failed to save initial balance: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.DashboardID); err != nil {
		return nil, fmt.Errorf("failed to invalidate cached views: %w", err)
	}

	return &SetInitialBalanceOutput{InitialBalance: balance}, nil
}
