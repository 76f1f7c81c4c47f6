// Package profit derives daily profit, period summaries and dynamic daily targets from a
// dashboard's sparse series of end-of-day balances. Every function is pure and safe for
// concurrent use over a snapshot of entries and goals.
package profit

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// Entries maps a date key (YYYY-MM-DD) to the entry recorded for that day.
type Entries map[string]entity.DailyEntry

// NewEntries indexes a list of entries by date key. Later duplicates win.
func NewEntries(list []*entity.DailyEntry) Entries {
	entries := make(Entries, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		entries[e.DateKey] = *e
	}
	return entries
}

// SortedKeys returns the date keys in chronological order.
func (e Entries) SortedKeys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EffectiveBalanceBefore returns the balance carried into dateKey: the final balance of the
// latest entry strictly before dateKey, or initial when there is none. Keys are compared as
// strings, which orders them chronologically because the format is fixed width.
func EffectiveBalanceBefore(dateKey string, entries Entries, initial decimal.Decimal) decimal.Decimal {
	latest := ""
	for key := range entries {
		if key < dateKey && key > latest {
			latest = key
		}
	}
	if latest == "" {
		return initial
	}
	return entries[latest].FinalBalance
}

// ProfitFor returns the profit of a single day: its recorded balance minus the balance carried
// into it. Days without an entry yield zero.
func ProfitFor(dateKey string, entries Entries, initial decimal.Decimal) decimal.Decimal {
	entry, ok := entries[dateKey]
	if !ok {
		return decimal.Zero
	}
	return entry.FinalBalance.Sub(EffectiveBalanceBefore(dateKey, entries, initial))
}

// Series answers the same questions as EffectiveBalanceBefore and ProfitFor over a sorted
// index, for callers that evaluate many days against one snapshot.
type Series struct {
	entries Entries
	keys    []string
	initial decimal.Decimal
}

// NewSeries builds a Series over a snapshot. The snapshot must not be mutated afterwards.
func NewSeries(entries Entries, initial decimal.Decimal) *Series {
	return &Series{
		entries: entries,
		keys:    entries.SortedKeys(),
		initial: initial,
	}
}

// Initial returns the anchor balance of the series.
func (s *Series) Initial() decimal.Decimal {
	return s.initial
}

// Entries returns the underlying snapshot.
func (s *Series) Entries() Entries {
	return s.entries
}

// Keys returns the chronologically sorted date keys.
func (s *Series) Keys() []string {
	return s.keys
}

// Entry returns the entry recorded at dateKey.
func (s *Series) Entry(dateKey string) (entity.DailyEntry, bool) {
	e, ok := s.entries[dateKey]
	return e, ok
}

// BalanceBefore is EffectiveBalanceBefore using binary search.
func (s *Series) BalanceBefore(dateKey string) decimal.Decimal {
	i := sort.SearchStrings(s.keys, dateKey)
	if i == 0 {
		return s.initial
	}
	return s.entries[s.keys[i-1]].FinalBalance
}

// ProfitFor is the package-level ProfitFor using binary search.
func (s *Series) ProfitFor(dateKey string) decimal.Decimal {
	entry, ok := s.entries[dateKey]
	if !ok {
		return decimal.Zero
	}
	return entry.FinalBalance.Sub(s.BalanceBefore(dateKey))
}
