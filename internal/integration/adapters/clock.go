package adapters

import (
	"time"
	_ "time/tzdata"

	"github.com/profit-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock of a fixed location. Date keys
// for "today" are derived from this location.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock in the named IANA location. An empty or unknown name
// falls back to UTC.
func NewSystemClock(location string) (adapter.Clock, error) {
	if location == "" {
		return systemClock{loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(location)
	if err != nil {
		return systemClock{loc: time.UTC}, err
	}
	return systemClock{loc: loc}, nil
}

// Now returns the current time in the clock's location.
func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
