package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser("trader@example.com", "", "hash")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "trader@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "trader", found.Username)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	duplicate := entity.NewUser("trader@example.com", "", "other")
	assert.ErrorIs(t, repo.Create(ctx, duplicate), domainerror.ErrEmailAlreadyExists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	userID := uuid.New()

	require.NoError(t, repo.SaveRefreshToken(ctx, "live", userID, time.Now().UTC().Add(time.Hour)))
	require.NoError(t, repo.SaveRefreshToken(ctx, "stale", userID, time.Now().UTC().Add(-time.Hour)))

	valid, err := repo.IsRefreshTokenValid(ctx, "live")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = repo.IsRefreshTokenValid(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, valid)

	require.NoError(t, repo.InvalidateRefreshToken(ctx, "live"))
	valid, err = repo.IsRefreshTokenValid(ctx, "live")
	require.NoError(t, err)
	assert.False(t, valid)

	t.Run("revoking every session of a user", func(t *testing.T) {
		otherUser := uuid.New()
		require.NoError(t, repo.SaveRefreshToken(ctx, "laptop", userID, time.Now().UTC().Add(time.Hour)))
		require.NoError(t, repo.SaveRefreshToken(ctx, "phone", userID, time.Now().UTC().Add(time.Hour)))
		require.NoError(t, repo.SaveRefreshToken(ctx, "neighbour", otherUser, time.Now().UTC().Add(time.Hour)))

		require.NoError(t, repo.InvalidateAllUserRefreshTokens(ctx, userID))
		for token, want := range map[string]bool{"laptop": false, "phone": false, "neighbour": true} {
			valid, err := repo.IsRefreshTokenValid(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, want, valid, token)
		}
	})

	deleted, err := repo.DeleteExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestDashboardRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	userID := uuid.New()

	first := entity.NewDashboard(userID, "Day trading")
	second := entity.NewDashboard(userID, "Swing")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	t.Run("lists by creation time", func(t *testing.T) {
		list, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Day trading", list[0].Name)
		assert.Equal(t, "Swing", list[1].Name)

		list, err = repo.FindByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("name uniqueness excludes the renamed dashboard", func(t *testing.T) {
		exists, err := repo.ExistsByUserAndName(ctx, userID, "Swing", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUserAndName(ctx, userID, "Swing", second.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByUserAndName(ctx, uuid.New(), "Swing", uuid.Nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update renames", func(t *testing.T) {
		second.Name = "Options"
		second.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, second))

		found, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Options", found.Name)
		assert.Equal(t, userID, found.UserID)
	})

	t.Run("delete cascades to dashboard data", func(t *testing.T) {
		entries := NewEntryRepository(db)
		goals := NewGoalRepository(db)
		balances := NewInitialBalanceRepository(db)
		settings := NewSettingsRepository(db)

		require.NoError(t, entries.Upsert(ctx, entity.NewDailyEntry(userID, first.ID, "2024-03-01", decimal.NewFromInt(1100), nil, "")))
		require.NoError(t, entries.Upsert(ctx, entity.NewDailyEntry(userID, second.ID, "2024-03-01", decimal.NewFromInt(50), nil, "")))
		require.NoError(t, goals.Create(ctx, entity.NewGoal(userID, first.ID, entity.GoalTypeMonthly, decimal.NewFromInt(500), "2024-03")))
		require.NoError(t, balances.Upsert(ctx, &entity.InitialBalance{DashboardID: first.ID, UserID: userID, Balance: decimal.NewFromInt(1000), Currency: entity.CurrencyBRL}))
		require.NoError(t, settings.Upsert(ctx, entity.DefaultAppSettings(userID, first.ID)))

		require.NoError(t, repo.Delete(ctx, first.ID))

		_, err := repo.FindByID(ctx, first.ID)
		assert.ErrorIs(t, err, domainerror.ErrDashboardNotFound)

		list, err := entries.FindByDashboardID(ctx, first.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		goalList, err := goals.FindByDashboardID(ctx, first.ID)
		require.NoError(t, err)
		assert.Empty(t, goalList)

		_, err = balances.FindByDashboardID(ctx, first.ID)
		assert.ErrorIs(t, err, domainerror.ErrInitialBalanceNotFound)

		stored, err := settings.FindByDashboardID(ctx, first.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)

		// Other dashboards keep their data.
		list, err = entries.FindByDashboardID(ctx, second.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete unknown dashboard", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domainerror.ErrDashboardNotFound)
	})
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestDB(t))
	userID, dashboardID := uuid.New(), uuid.New()

	stored, err := repo.FindByDashboardID(ctx, dashboardID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	settings := entity.DefaultAppSettings(userID, dashboardID)
	settings.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, settings))

	settings.Currency = entity.CurrencyUSD
	settings.EnableNotifications = true
	settings.NotificationTime = "07:30"
	require.NoError(t, repo.Upsert(ctx, settings))

	stored, err = repo.FindByDashboardID(ctx, dashboardID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.CurrencyUSD, stored.Currency)
	assert.True(t, stored.EnableNotifications)
	assert.Equal(t, "07:30", stored.NotificationTime)

	quiet := entity.DefaultAppSettings(userID, uuid.New())
	require.NoError(t, repo.Upsert(ctx, quiet))

	enabled, err := repo.FindWithNotificationsEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, dashboardID, enabled[0].DashboardID)
}

func TestInitialBalanceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInitialBalanceRepository(newTestDB(t))
	dashboardID := uuid.New()

	_, err := repo.FindByDashboardID(ctx, dashboardID)
	assert.ErrorIs(t, err, domainerror.ErrInitialBalanceNotFound)

	balance := &entity.InitialBalance{
		DashboardID: dashboardID,
		UserID:      uuid.New(),
		Balance:     decimal.RequireFromString("1000.50"),
		Currency:    entity.CurrencyBRL,
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, balance))

	balance.Balance = decimal.RequireFromString("2500.25")
	balance.Currency = entity.CurrencyEUR
	require.NoError(t, repo.Upsert(ctx, balance))

	stored, err := repo.FindByDashboardID(ctx, dashboardID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2500.25").Equal(stored.Balance), stored.Balance.String())
	assert.Equal(t, entity.CurrencyEUR, stored.Currency)
}

func TestEntryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))
	userID, dashboardID := uuid.New(), uuid.New()

	march4 := entity.NewDailyEntry(userID, dashboardID, "2024-03-04", decimal.NewFromInt(1150), []string{"scalp"}, "")
	march1 := entity.NewDailyEntry(userID, dashboardID, "2024-03-01", decimal.NewFromInt(1100), []string{"breakout", "scalp"}, "good day")
	require.NoError(t, repo.Upsert(ctx, march4))
	require.NoError(t, repo.Upsert(ctx, march1))

	t.Run("upsert replaces the entry of the same day", func(t *testing.T) {
		originalID := march1.ID
		replacement := entity.NewDailyEntry(userID, dashboardID, "2024-03-01", decimal.RequireFromString("1090.75"), []string{"news"}, "")
		require.NoError(t, repo.Upsert(ctx, replacement))
		assert.Equal(t, originalID, replacement.ID)

		stored, err := repo.FindByDashboardAndDate(ctx, dashboardID, "2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, originalID, stored.ID)
		assert.True(t, decimal.RequireFromString("1090.75").Equal(stored.FinalBalance), stored.FinalBalance.String())
		assert.Equal(t, []string{"news"}, stored.Tags)
		assert.Empty(t, stored.Notes)
	})

	t.Run("lists in date order", func(t *testing.T) {
		list, err := repo.FindByDashboardID(ctx, dashboardID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "2024-03-01", list[0].DateKey)
		assert.Equal(t, "2024-03-04", list[1].DateKey)
	})

	t.Run("missing day", func(t *testing.T) {
		_, err := repo.FindByDashboardAndDate(ctx, dashboardID, "2024-03-02")
		assert.ErrorIs(t, err, domainerror.ErrEntryNotFound)
	})

	t.Run("distinct sorted tags", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, entity.NewDailyEntry(userID, dashboardID, "2024-03-05", decimal.NewFromInt(1200), []string{"scalp", "breakout"}, "")))
		require.NoError(t, repo.Upsert(ctx, entity.NewDailyEntry(userID, uuid.New(), "2024-03-05", decimal.NewFromInt(10), []string{"other"}, "")))

		tags, err := repo.ListTags(ctx, dashboardID)
		require.NoError(t, err)
		assert.Equal(t, []string{"breakout", "news", "scalp"}, tags)

		tags, err = repo.ListTags(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))
	userID, dashboardID := uuid.New(), uuid.New()

	monthly := entity.NewGoal(userID, dashboardID, entity.GoalTypeMonthly, decimal.NewFromInt(500), "2024-03")
	weekly := entity.NewGoal(userID, dashboardID, entity.GoalTypeWeekly, decimal.NewFromInt(200), "2024-W10")
	daily := entity.NewGoal(userID, dashboardID, entity.GoalTypeDaily, decimal.NewFromInt(50), "2024-03-05")
	for _, g := range []*entity.Goal{weekly, daily, monthly} {
		require.NoError(t, repo.Create(ctx, g))
	}

	list, err := repo.FindByDashboardID(ctx, dashboardID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"2024-03", "2024-03-05", "2024-W10"},
		[]string{list[0].AppliesTo, list[1].AppliesTo, list[2].AppliesTo})

	monthly.Amount = decimal.RequireFromString("750.5")
	monthly.AppliesTo = "2024-04"
	require.NoError(t, repo.Update(ctx, monthly))

	stored, err := repo.FindByID(ctx, monthly.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GoalTypeMonthly, stored.Type)
	assert.Equal(t, "2024-04", stored.AppliesTo)
	assert.True(t, decimal.RequireFromString("750.5").Equal(stored.Amount), stored.Amount.String())

	require.NoError(t, repo.Delete(ctx, monthly.ID))
	_, err = repo.FindByID(ctx, monthly.ID)
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, monthly.ID), domainerror.ErrGoalNotFound)
	assert.ErrorIs(t, repo.Update(ctx, monthly), domainerror.ErrGoalNotFound)
}

func TestEmailQueueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(newTestDB(t))

	due := entity.NewEmailJob(entity.TemplateDailyReminder, "trader@example.com", "trader", "Reminder", map[string]interface{}{"dateKey": "2024-03-05"})
	later := entity.NewEmailJob(entity.TemplateDailyReminder, "trader@example.com", "trader", "Reminder", nil)
	later.ScheduledAt = time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.Create(ctx, due))
	require.NoError(t, repo.Create(ctx, later))

	pending, err := repo.GetPendingJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, due.ID, pending[0].ID)
	assert.Equal(t, "2024-03-05", pending[0].TemplateData["dateKey"])

	pending[0].Status = entity.EmailStatusSent
	require.NoError(t, repo.Update(ctx, pending[0]))

	stored, err := repo.GetByID(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EmailStatusSent, stored.Status)

	jobs, err := repo.GetByRecipient(ctx, "trader@example.com")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrEmailJobNotFound)
}
