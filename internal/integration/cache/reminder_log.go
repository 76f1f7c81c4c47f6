package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/profit-tracker/backend/internal/application/adapter"
)

// reminderTTL keeps a sent marker past the end of its day in every timezone.
const reminderTTL = 48 * time.Hour

// redisReminderLog implements adapter.ReminderLog with SETNX markers.
type redisReminderLog struct {
	client *redis.Client
}

// NewRedisReminderLog creates a Redis backed reminder log.
func NewRedisReminderLog(client *redis.Client) adapter.ReminderLog {
	return &redisReminderLog{client: client}
}

// MarkSent records the reminder of a dashboard for a day. It returns false when the
// reminder had already been recorded.
func (l *redisReminderLog) MarkSent(ctx context.Context, dashboardID uuid.UUID, dateKey string) (bool, error) {
	ok, err := l.client.SetNX(ctx, reminderKey(dashboardID, dateKey), time.Now().UTC().Format(time.RFC3339), reminderTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder: %w", err)
	}
	return ok, nil
}

// Unmark deletes the marker of a dashboard for a day.
func (l *redisReminderLog) Unmark(ctx context.Context, dashboardID uuid.UUID, dateKey string) error {
	if err := l.client.Del(ctx, reminderKey(dashboardID, dateKey)).Err(); err != nil {
		return fmt.Errorf("failed to release reminder: %w", err)
	}
	return nil
}

func reminderKey(dashboardID uuid.UUID, dateKey string) string {
	return fmt.Sprintf("%s:reminder:%s:%s", keyPrefix, dashboardID, dateKey)
}

// memoryReminderLog keeps markers in process memory for single-instance deployments
// without Redis.
type memoryReminderLog struct {
	mu   sync.Mutex
	sent map[string]struct{}
}

// NewMemoryReminderLog creates an in-process reminder log.
func NewMemoryReminderLog() adapter.ReminderLog {
	return &memoryReminderLog{sent: make(map[string]struct{})}
}

// MarkSent records the reminder of a dashboard for a day.
func (l *memoryReminderLog) MarkSent(_ context.Context, dashboardID uuid.UUID, dateKey string) (bool, error) {
	key := dashboardID.String() + ":" + dateKey

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sent[key]; ok {
		return false, nil
	}
	l.sent[key] = struct{}{}
	return true, nil
}

// Unmark forgets the marker of a dashboard for a day.
func (l *memoryReminderLog) Unmark(_ context.Context, dashboardID uuid.UUID, dateKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sent, dashboardID.String()+":"+dateKey)
	return nil
}
