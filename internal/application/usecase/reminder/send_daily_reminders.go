// Package reminder contains the daily entry reminder use case.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/application/usecase/tracker"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// SendDailyRemindersInput represents the input for one reminder sweep.
type SendDailyRemindersInput struct{}

// SendDailyRemindersOutput reports what a sweep did.
type SendDailyRemindersOutput struct {
	Checked int
	Queued  int
}

// SendDailyRemindersUseCase emails the owner of every dashboard with reminders enabled
// once its notification time has passed and no entry exists for today. Each dashboard is
// reminded at most once per day.
type SendDailyRemindersUseCase struct {
	settingsRepo  adapter.SettingsRepository
	dashboardRepo adapter.DashboardRepository
	entryRepo     adapter.EntryRepository
	userRepo      adapter.UserRepository
	loader        *tracker.SnapshotLoader
	reminderLog   adapter.ReminderLog
	emailService  adapter.EmailService
	clock         adapter.Clock
	appURL        string
}

// NewSendDailyRemindersUseCase creates a new SendDailyRemindersUseCase instance.
func NewSendDailyRemindersUseCase(
	settingsRepo adapter.SettingsRepository,
	dashboardRepo adapter.DashboardRepository,
	entryRepo adapter.EntryRepository,
	userRepo adapter.UserRepository,
	loader *tracker.SnapshotLoader,
	reminderLog adapter.ReminderLog,
	emailService adapter.EmailService,
	clock adapter.Clock,
	appURL string,
) *SendDailyRemindersUseCase {
	return &SendDailyRemindersUseCase{
		settingsRepo:  settingsRepo,
		dashboardRepo: dashboardRepo,
		entryRepo:     entryRepo,
		userRepo:      userRepo,
		loader:        loader,
		reminderLog:   reminderLog,
		emailService:  emailService,
		clock:         clock,
		appURL:        appURL,
	}
}

// Execute runs one sweep. Failures on a single dashboard are logged and do not stop the sweep.
func (uc *SendDailyRemindersUseCase) Execute(ctx context.Context, _ SendDailyRemindersInput) (*SendDailyRemindersOutput, error) {
	all, err := uc.settingsRepo.FindWithNotificationsEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder settings: %w", err)
	}

	now := uc.clock.Now()
	output := &SendDailyRemindersOutput{}
	for _, settings := range all {
		if ctx.Err() != nil {
			return output, ctx.Err()
		}
		output.Checked++

		queued, err := uc.remind(ctx, settings, now)
		if err != nil {
			slog.Error("Failed to send daily reminder",
				"dashboardID", settings.DashboardID,
				"error", err,
			)
			continue
		}
		if queued {
			output.Queued++
		}
	}

	return output, nil
}

func (uc *SendDailyRemindersUseCase) remind(ctx context.Context, settings *entity.AppSettings, now time.Time) (queued bool, err error) {
	if !isDue(settings, now) {
		return false, nil
	}

	todayKey := valueobject.DateKeyOf(now)
	_, err = uc.entryRepo.FindByDashboardAndDate(ctx, settings.DashboardID, todayKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domainerror.ErrEntryNotFound) {
		return false, fmt.Errorf("failed to check today's entry: %w", err)
	}

	dashboard, err := uc.dashboardRepo.FindByID(ctx, settings.DashboardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDashboardNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find dashboard: %w", err)
	}

	first, err := uc.reminderLog.MarkSent(ctx, dashboard.ID, todayKey)
	if err != nil {
		return false, fmt.Errorf("failed to record reminder: %w", err)
	}
	if !first {
		return false, nil
	}
	// The marker claims the reminder for this sweep; a failure below hands it back.
	defer func() {
		if err == nil {
			return
		}
		if unmarkErr := uc.reminderLog.Unmark(context.WithoutCancel(ctx), dashboard.ID, todayKey); unmarkErr != nil {
			slog.Error("Failed to release reminder marker", "dashboardID", dashboard.ID, "error", unmarkErr)
		}
	}()

	user, err := uc.userRepo.FindByID(ctx, dashboard.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to find dashboard owner: %w", err)
	}

	snapshot, err := uc.loader.Read(ctx, dashboard)
	if err != nil {
		return false, err
	}

	err = uc.emailService.QueueDailyReminder(ctx, adapter.QueueDailyReminderInput{
		UserEmail:       user.Email,
		UserName:        user.Username,
		DashboardName:   dashboard.Name,
		DateKey:         todayKey,
		PreviousBalance: profit.FormatMoney(snapshot.Series.BalanceBefore(todayKey), snapshot.Currency),
		DashboardURL:    fmt.Sprintf("%s/dashboards/%s", uc.appURL, dashboard.ID),
	})
	if err != nil {
		return false, fmt.Errorf("failed to queue reminder: %w", err)
	}

	slog.Info("Daily reminder queued", "dashboardID", dashboard.ID, "userID", user.ID, "date", todayKey)
	return true, nil
}

// isDue reports whether now is at or past the dashboard's notification time today.
func isDue(settings *entity.AppSettings, now time.Time) bool {
	hour, minute, ok := settings.NotificationClock()
	if !ok {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	return !now.Before(at)
}
