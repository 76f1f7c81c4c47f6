package usecasetest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// SeedUser stores a user and returns it.
func (s *Store) SeedUser(email string) *entity.User {
	u := entity.NewUser(email, "", "hashed")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return u
}

// SeedDashboard stores a dashboard owned by userID.
func (s *Store) SeedDashboard(userID uuid.UUID, name string) *entity.Dashboard {
	d := entity.NewDashboard(userID, name)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboards[d.ID] = d
	return d
}

// SeedBalance stores the initial balance of a dashboard.
func (s *Store) SeedBalance(d *entity.Dashboard, balance float64, currency entity.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[d.ID] = &entity.InitialBalance{
		DashboardID: d.ID,
		UserID:      d.UserID,
		Balance:     decimal.NewFromFloat(balance),
		Currency:    currency,
		UpdatedAt:   time.Now().UTC(),
	}
}

// SeedEntry stores a daily entry.
func (s *Store) SeedEntry(d *entity.Dashboard, dateKey string, balance float64, tags ...string) {
	e := entity.NewDailyEntry(d.UserID, d.ID, dateKey, decimal.NewFromFloat(balance), tags, "")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[d.ID] == nil {
		s.entries[d.ID] = map[string]*entity.DailyEntry{}
	}
	s.entries[d.ID][dateKey] = e
}

// SeedGoal stores a goal.
func (s *Store) SeedGoal(d *entity.Dashboard, goalType entity.GoalType, amount float64, appliesTo string) *entity.Goal {
	g := entity.NewGoal(d.UserID, d.ID, goalType, decimal.NewFromFloat(amount), appliesTo)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[g.ID] = g
	return g
}

// SeedSettings stores dashboard settings.
func (s *Store) SeedSettings(settings *entity.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *settings
	s.settings[settings.DashboardID] = &copied
}

// MarchScenario seeds a dashboard with an initial balance of 1000 and entries closing at
// 1100 on 2024-03-01 and 1150 on 2024-03-04.
func (s *Store) MarchScenario(userID uuid.UUID) *entity.Dashboard {
	d := s.SeedDashboard(userID, "Day trading")
	s.SeedBalance(d, 1000, entity.CurrencyBRL)
	s.SeedEntry(d, "2024-03-01", 1100, "breakout")
	s.SeedEntry(d, "2024-03-04", 1150, "scalp")
	return d
}

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
