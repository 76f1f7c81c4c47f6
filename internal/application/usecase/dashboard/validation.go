package dashboard

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// validateName trims the name, checks its length and that the user has no other dashboard
// with the same name.
func validateName(ctx context.Context, repo adapter.DashboardRepository, userID uuid.UUID, name string, excludeID uuid.UUID) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardNameRequired,
			"dashboard name is required",
			domainerror.ErrDashboardNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > entity.DashboardNameMaxLength {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardNameTooLong,
			"dashboard name is too long (max 100 characters)",
			domainerror.ErrDashboardNameTooLong,
		)
	}

	exists, err := repo.ExistsByUserAndName(ctx, userID, name, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check dashboard name: %w", err)
	}
	if exists {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardNameExists,
			"a dashboard with this name already exists",
			domainerror.ErrDashboardNameExists,
		)
	}
	return name, nil
}
