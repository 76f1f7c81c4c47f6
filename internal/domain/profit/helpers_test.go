package profit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func day(key string) time.Time {
	t, err := valueobject.ParseDateKey(key)
	if err != nil {
		panic(err)
	}
	return t
}

func entriesOf(balances map[string]float64) Entries {
	entries := make(Entries, len(balances))
	for key, balance := range balances {
		entries[key] = entity.DailyEntry{DateKey: key, FinalBalance: dec(balance), Tags: []string{}}
	}
	return entries
}

func withTags(entries Entries, key string, tags ...string) Entries {
	e := entries[key]
	e.Tags = tags
	entries[key] = e
	return entries
}

func goal(goalType entity.GoalType, amount float64, appliesTo string) *entity.Goal {
	return &entity.Goal{
		ID:        uuid.New(),
		Type:      goalType,
		Amount:    dec(amount),
		AppliesTo: appliesTo,
	}
}

// marchScenario is the reference data set: two entries at the start of March 2024 over an
// initial balance of 1000.
func marchScenario() (Entries, decimal.Decimal) {
	return entriesOf(map[string]float64{
		"2024-03-01": 1100,
		"2024-03-04": 1150,
	}), dec(1000)
}
