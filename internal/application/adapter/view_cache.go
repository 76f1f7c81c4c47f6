package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ViewCache stores computed view models per dashboard. Invalidate discards every view of
// a dashboard at once and is called after any write that changes its data.
type ViewCache interface {
	// Get loads a cached value into dest. found is false on a miss. version identifies
	// the dashboard data generation the lookup saw; it is read before the view is built.
	Get(ctx context.Context, dashboardID uuid.UUID, key string, dest interface{}) (found bool, version int64, err error)

	// Set stores value under key for the version returned by Get. Values stored for an
	// invalidated version are never served.
	Set(ctx context.Context, dashboardID uuid.UUID, version int64, key string, value interface{}) error

	// Invalidate drops all cached views of the dashboard.
	Invalidate(ctx context.Context, dashboardID uuid.UUID) error
}

// ReminderLog remembers which daily reminders were already sent.
type ReminderLog interface {
	// MarkSent records the reminder of a dashboard for a day. It returns false when the
	// reminder had already been recorded.
	MarkSent(ctx context.Context, dashboardID uuid.UUID, dateKey string) (bool, error)

	// Unmark releases a marker so a later sweep can retry the reminder.
	Unmark(ctx context.Context, dashboardID uuid.UUID, dateKey string) error
}
