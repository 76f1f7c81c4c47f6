package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/profit-tracker/backend/internal/application/usecase/tracker"
	"github.com/profit-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/profit-tracker/backend/internal/domain/entity"
)

type reminderFixture struct {
	store  *usecasetest.Store
	clock  *usecasetest.Clock
	emails *usecasetest.EmailService
	uc     *SendDailyRemindersUseCase
	board  *entity.Dashboard
	owner  *entity.User
}

func newReminderFixture(notificationTime string) *reminderFixture {
	store := usecasetest.NewStore()
	owner := store.SeedUser("trader@example.com")
	board := store.MarchScenario(owner.ID)

	settings := entity.DefaultAppSettings(owner.ID, board.ID)
	settings.EnableNotifications = true
	settings.NotificationTime = notificationTime
	store.SeedSettings(settings)

	clock := &usecasetest.Clock{T: time.Date(2024, time.March, 5, 17, 59, 0, 0, time.UTC)}
	emails := &usecasetest.EmailService{}
	loader := tracker.NewSnapshotLoader(
		dashboard.NewAccess(store.Dashboards()),
		store.Entries(),
		store.Balances(),
		store.Goals(),
		store.Settings(),
	)
	uc := NewSendDailyRemindersUseCase(
		store.Settings(),
		store.Dashboards(),
		store.Entries(),
		store.Users(),
		loader,
		usecasetest.NewReminderLog(),
		emails,
		clock,
		"https://app.example.com",
	)
	return &reminderFixture{store: store, clock: clock, emails: emails, uc: uc, board: board, owner: owner}
}

func TestSendDailyReminders(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture("18:00")

	out, err := f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Checked)
	assert.Equal(t, 0, out.Queued, "not due before the notification time")

	f.clock.T = time.Date(2024, time.March, 5, 18, 0, 0, 0, time.UTC)
	out, err = f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Queued)

	require.Len(t, f.emails.Reminders, 1)
	sent := f.emails.Reminders[0]
	assert.Equal(t, "trader@example.com", sent.UserEmail)
	assert.Equal(t, "trader", sent.UserName)
	assert.Equal(t, "2024-03-05", sent.DateKey)
	assert.Equal(t, "R$ 1.150,00", sent.PreviousBalance)
	assert.Equal(t, "https://app.example.com/dashboards/"+f.board.ID.String(), sent.DashboardURL)

	// Later sweeps on the same day do not repeat it.
	f.clock.T = time.Date(2024, time.March, 5, 21, 0, 0, 0, time.UTC)
	out, err = f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Queued)

	// Next day, with the entry already recorded, nothing is sent.
	f.store.SeedEntry(f.board, "2024-03-06", 1180)
	f.clock.T = time.Date(2024, time.March, 6, 19, 0, 0, 0, time.UTC)
	out, err = f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Queued)
	assert.Len(t, f.emails.Reminders, 1)
}

func TestSendDailyReminders_RetriesAfterQueueFailure(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture("18:00")
	f.emails.FailNext = 1
	f.clock.T = time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)

	out, err := f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Queued)
	assert.Empty(t, f.emails.Reminders)

	f.clock.T = f.clock.T.Add(time.Minute)
	out, err = f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Queued)
	assert.Len(t, f.emails.Reminders, 1)

	out, err = f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Queued)
}

func TestSendDailyReminders_SkipsDisabledAndInvalid(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture("bogus")
	f.clock.T = time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC)

	other := f.store.SeedDashboard(f.owner.ID, "Disabled")
	settings := entity.DefaultAppSettings(f.owner.ID, other.ID)
	settings.NotificationTime = "08:00"
	f.store.SeedSettings(settings)

	out, err := f.uc.Execute(ctx, SendDailyRemindersInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Checked)
	assert.Equal(t, 0, out.Queued)
	assert.Empty(t, f.emails.Reminders)
}

func TestIsDue(t *testing.T) {
	settings := &entity.AppSettings{NotificationTime: "09:30"}
	loc := time.FixedZone("BRT", -3*3600)

	assert.False(t, isDue(settings, time.Date(2024, time.March, 5, 9, 29, 59, 0, loc)))
	assert.True(t, isDue(settings, time.Date(2024, time.March, 5, 9, 30, 0, 0, loc)))
	assert.True(t, isDue(settings, time.Date(2024, time.March, 5, 23, 0, 0, 0, loc)))
}
