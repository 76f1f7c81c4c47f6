// Package usecasetest provides in-memory adapter implementations for use case tests.
package usecasetest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	"github.com/profit-tracker/backend/internal/domain/entity"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
)

// Clock is a settable adapter.Clock.
type Clock struct {
	T time.Time
}

// Now returns the configured time.
func (c *Clock) Now() time.Time { return c.T }

// Store holds every repository fake over shared maps.
type Store struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*entity.User
	dashboards map[uuid.UUID]*entity.Dashboard
	settings   map[uuid.UUID]*entity.AppSettings
	balances   map[uuid.UUID]*entity.InitialBalance
	entries    map[uuid.UUID]map[string]*entity.DailyEntry
	goals      map[uuid.UUID]*entity.Goal
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:      map[uuid.UUID]*entity.User{},
		dashboards: map[uuid.UUID]*entity.Dashboard{},
		settings:   map[uuid.UUID]*entity.AppSettings{},
		balances:   map[uuid.UUID]*entity.InitialBalance{},
		entries:    map[uuid.UUID]map[string]*entity.DailyEntry{},
		goals:      map[uuid.UUID]*entity.Goal{},
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() adapter.UserRepository { return userRepo{s} }

// Dashboards returns the dashboard repository view of the store.
func (s *Store) Dashboards() adapter.DashboardRepository { return dashboardRepo{s} }

// Settings returns the settings repository view of the store.
func (s *Store) Settings() adapter.SettingsRepository { return settingsRepo{s} }

// Balances returns the initial balance repository view of the store.
func (s *Store) Balances() adapter.InitialBalanceRepository { return balanceRepo{s} }

// Entries returns the entry repository view of the store.
func (s *Store) Entries() adapter.EntryRepository { return entryRepo{s} }

// Goals returns the goal repository view of the store.
func (s *Store) Goals() adapter.GoalRepository { return goalRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = user
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

type dashboardRepo struct{ s *Store }

func (r dashboardRepo) Create(_ context.Context, d *entity.Dashboard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dashboards[d.ID] = d
	return nil
}

func (r dashboardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Dashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.dashboards[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, domainerror.ErrDashboardNotFound
}

func (r dashboardRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Dashboard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Dashboard
	for _, d := range r.s.dashboards {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r dashboardRepo) ExistsByUserAndName(_ context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.dashboards {
		if d.UserID == userID && d.Name == name && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r dashboardRepo) Update(_ context.Context, d *entity.Dashboard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dashboards[d.ID]; !ok {
		return domainerror.ErrDashboardNotFound
	}
	copied := *d
	r.s.dashboards[d.ID] = &copied
	return nil
}

func (r dashboardRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.dashboards, id)
	delete(r.s.settings, id)
	delete(r.s.balances, id)
	delete(r.s.entries, id)
	for gid, g := range r.s.goals {
		if g.DashboardID == id {
			delete(r.s.goals, gid)
		}
	}
	return nil
}

type settingsRepo struct{ s *Store }

func (r settingsRepo) FindByDashboardID(_ context.Context, dashboardID uuid.UUID) (*entity.AppSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if st, ok := r.s.settings[dashboardID]; ok {
		copied := *st
		return &copied, nil
	}
	return nil, nil
}

func (r settingsRepo) Upsert(_ context.Context, st *entity.AppSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *st
	r.s.settings[st.DashboardID] = &copied
	return nil
}

func (r settingsRepo) FindWithNotificationsEnabled(_ context.Context) ([]*entity.AppSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.AppSettings
	for _, st := range r.s.settings {
		if st.EnableNotifications {
			copied := *st
			out = append(out, &copied)
		}
	}
	return out, nil
}

type balanceRepo struct{ s *Store }

func (r balanceRepo) FindByDashboardID(_ context.Context, dashboardID uuid.UUID) (*entity.InitialBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.balances[dashboardID]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, domainerror.ErrInitialBalanceNotFound
}

func (r balanceRepo) Upsert(_ context.Context, b *entity.InitialBalance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *b
	r.s.balances[b.DashboardID] = &copied
	return nil
}

type entryRepo struct{ s *Store }

func (r entryRepo) Upsert(_ context.Context, e *entity.DailyEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byDate, ok := r.s.entries[e.DashboardID]
	if !ok {
		byDate = map[string]*entity.DailyEntry{}
		r.s.entries[e.DashboardID] = byDate
	}
	if existing, ok := byDate[e.DateKey]; ok {
		e.ID = existing.ID
		e.CreatedAt = existing.CreatedAt
	}
	copied := *e
	byDate[e.DateKey] = &copied
	return nil
}

func (r entryRepo) FindByDashboardID(_ context.Context, dashboardID uuid.UUID) ([]*entity.DailyEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.DailyEntry, 0, len(r.s.entries[dashboardID]))
	for _, e := range r.s.entries[dashboardID] {
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateKey < out[j].DateKey })
	return out, nil
}

func (r entryRepo) FindByDashboardAndDate(_ context.Context, dashboardID uuid.UUID, dateKey string) (*entity.DailyEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.entries[dashboardID][dateKey]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domainerror.ErrEntryNotFound
}

func (r entryRepo) ListTags(_ context.Context, dashboardID uuid.UUID) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := map[string]struct{}{}
	for _, e := range r.s.entries[dashboardID] {
		for _, t := range e.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, nil
}

type goalRepo struct{ s *Store }

func (r goalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *g
	r.s.goals[g.ID] = &copied
	return nil
}

func (r goalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.goals[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r goalRepo) FindByDashboardID(_ context.Context, dashboardID uuid.UUID) ([]*entity.Goal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Goal
	for _, g := range r.s.goals {
		if g.DashboardID == dashboardID {
			copied := *g
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppliesTo != out[j].AppliesTo {
			return out[i].AppliesTo < out[j].AppliesTo
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r goalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.goals[g.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *g
	r.s.goals[g.ID] = &copied
	return nil
}

func (r goalRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.goals, id)
	return nil
}

// Cache is an in-memory adapter.ViewCache that round-trips values through JSON. Like the
// Redis cache it keys views by a per-dashboard version.
type Cache struct {
	mu            sync.Mutex
	values        map[string][]byte
	versions      map[uuid.UUID]int64
	Invalidations map[uuid.UUID]int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{values: map[string][]byte{}, versions: map[uuid.UUID]int64{}, Invalidations: map[uuid.UUID]int{}}
}

func cacheKey(dashboardID uuid.UUID, version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", dashboardID, version, key)
}

func (c *Cache) Get(_ context.Context, dashboardID uuid.UUID, key string, dest interface{}) (bool, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	version := c.versions[dashboardID]
	raw, ok := c.values[cacheKey(dashboardID, version, key)]
	if !ok {
		return false, version, nil
	}
	return true, version, json.Unmarshal(raw, dest)
}

func (c *Cache) Set(_ context.Context, dashboardID uuid.UUID, version int64, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[cacheKey(dashboardID, version, key)] = raw
	return nil
}

func (c *Cache) Invalidate(_ context.Context, dashboardID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[dashboardID]++
	c.Invalidations[dashboardID]++
	return nil
}

// ReminderLog records reminders in memory.
type ReminderLog struct {
	mu   sync.Mutex
	sent map[string]bool
}

// NewReminderLog creates an empty reminder log.
func NewReminderLog() *ReminderLog {
	return &ReminderLog{sent: map[string]bool{}}
}

func (l *ReminderLog) MarkSent(_ context.Context, dashboardID uuid.UUID, dateKey string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := dashboardID.String() + ":" + dateKey
	if l.sent[key] {
		return false, nil
	}
	l.sent[key] = true
	return true, nil
}

func (l *ReminderLog) Unmark(_ context.Context, dashboardID uuid.UUID, dateKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sent, dashboardID.String()+":"+dateKey)
	return nil
}

// EmailService records queued reminders. The next FailNext calls fail with ErrQueue.
type EmailService struct {
	mu        sync.Mutex
	Reminders []adapter.QueueDailyReminderInput
	FailNext  int
}

// ErrQueue is returned by EmailService while FailNext is positive.
var ErrQueue = errors.New("email queue unavailable")

func (e *EmailService) QueueDailyReminder(_ context.Context, input adapter.QueueDailyReminderInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.FailNext > 0 {
		e.FailNext--
		return ErrQueue
	}
	e.Reminders = append(e.Reminders, input)
	return nil
}
