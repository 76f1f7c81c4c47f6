package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateKeyOf(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateKeyOf(date(2024, time.March, 5)))
	assert.Equal(t, "0999-01-09", DateKeyOf(date(999, time.January, 9)))

	// Wall-clock day is kept, no conversion to UTC.
	loc := time.FixedZone("BRT", -3*3600)
	assert.Equal(t, "2024-03-05", DateKeyOf(time.Date(2024, time.March, 5, 23, 30, 0, 0, loc)))
}

func TestParseDateKey(t *testing.T) {
	t.Run("valid key parses to midnight UTC", func(t *testing.T) {
		got, err := ParseDateKey("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 29), got)
	})

	for _, key := range []string{"", "2024-2-29", "2023-02-29", "2024-13-01", "20240229", "2024-W01"} {
		t.Run("rejects "+key, func(t *testing.T) {
			_, err := ParseDateKey(key)
			assert.Error(t, err)
			assert.False(t, IsValidDateKey(key))
		})
	}
}

func TestISOWeekNumberOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"2024-01-01 is week 1", date(2024, time.January, 1), 1},
		{"2023-01-01 belongs to week 52 of 2022", date(2023, time.January, 1), 52},
		{"2024-12-30 belongs to week 1 of 2025", date(2024, time.December, 30), 1},
		{"2020-12-31 is week 53", date(2020, time.December, 31), 53},
		{"2021-01-03 is still week 53 of 2020", date(2021, time.January, 3), 53},
		{"2024-03-05", date(2024, time.March, 5), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ISOWeekNumberOf(tt.date))
		})
	}
}

func TestISOWeekNumberOf_MatchesStdlib(t *testing.T) {
	for d := date(2015, time.December, 20); d.Before(date(2031, time.January, 10)); d = d.AddDate(0, 0, 1) {
		year, week := d.ISOWeek()
		require.Equal(t, week, ISOWeekNumberOf(d), d.Format(DateKeyLayout))
		require.Equal(t, year, ISOWeekYearOf(d), d.Format(DateKeyLayout))
	}
}

func TestWeekIDOf(t *testing.T) {
	assert.Equal(t, "2024-W01", WeekIDOf(date(2024, time.January, 1)))
	assert.Equal(t, "2022-W52", WeekIDOf(date(2023, time.January, 1)))
	assert.Equal(t, "2025-W01", WeekIDOf(date(2024, time.December, 30)))
	assert.Equal(t, "2024-W10", WeekIDOf(date(2024, time.March, 5)))
}

func TestMonthIDOf(t *testing.T) {
	assert.Equal(t, "2024-03", MonthIDOf(date(2024, time.March, 31)))
	assert.Equal(t, "2025-12", MonthIDOf(date(2025, time.December, 1)))
}

func TestParseWeekID(t *testing.T) {
	year, week, err := ParseWeekID("2020-W53")
	require.NoError(t, err)
	assert.Equal(t, 2020, year)
	assert.Equal(t, 53, week)

	for _, id := range []string{"2024-W00", "2024-W53", "2024-W1", "2024-01", "24-W01", "2024W01"} {
		t.Run("rejects "+id, func(t *testing.T) {
			_, _, err := ParseWeekID(id)
			assert.Error(t, err)
		})
	}
}

func TestParseMonthID(t *testing.T) {
	year, month, err := ParseMonthID("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)

	for _, id := range []string{"2024-00", "2024-13", "2024-3", "2024-03-01", "2024-W03"} {
		t.Run("rejects "+id, func(t *testing.T) {
			_, _, err := ParseMonthID(id)
			assert.Error(t, err)
		})
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		id        string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"2024-W01", date(2024, time.January, 1), date(2024, time.January, 7)},
		{"2025-W01", date(2024, time.December, 30), date(2025, time.January, 5)},
		{"2020-W53", date(2020, time.December, 28), date(2021, time.January, 3)},
		{"2022-W52", date(2022, time.December, 26), date(2023, time.January, 1)},
		{"2024-W10", date(2024, time.March, 4), date(2024, time.March, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rng, err := WeekRange(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, rng.Start)
			assert.Equal(t, EndOfDay(tt.wantEnd), rng.End)
			assert.Equal(t, time.Monday, rng.Start.Weekday())
		})
	}
}

func TestWeekRange_RoundTrip(t *testing.T) {
	for d := date(2019, time.December, 1); d.Before(date(2027, time.February, 1)); d = d.AddDate(0, 0, 1) {
		rng, err := WeekRange(WeekIDOf(d))
		require.NoError(t, err, d.Format(DateKeyLayout))
		require.True(t, rng.Contains(d), d.Format(DateKeyLayout))
	}
}

func TestMonthRange(t *testing.T) {
	rng, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 1), rng.Start)
	assert.Equal(t, EndOfDay(date(2024, time.February, 29)), rng.End)
	assert.Len(t, rng.Days(), 29)

	_, err = MonthRange("2024-W02")
	assert.Error(t, err)
}

func TestPeriodRange_Contains(t *testing.T) {
	rng := NewPeriodRange(date(2024, time.March, 4), date(2024, time.March, 10))

	assert.True(t, rng.Contains(date(2024, time.March, 4)))
	assert.True(t, rng.Contains(time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, rng.Contains(date(2024, time.March, 11)))
	assert.False(t, rng.Contains(time.Date(2024, time.March, 3, 23, 59, 59, 0, time.UTC)))
}

func TestWeekOfMonth(t *testing.T) {
	// March 2024 starts on a Friday.
	assert.Equal(t, 1, WeekOfMonth(date(2024, time.March, 1)))
	assert.Equal(t, 1, WeekOfMonth(date(2024, time.March, 2)))
	assert.Equal(t, 2, WeekOfMonth(date(2024, time.March, 3)))
	assert.Equal(t, 6, WeekOfMonth(date(2024, time.March, 31)))

	// September 2024 starts on a Sunday.
	assert.Equal(t, 1, WeekOfMonth(date(2024, time.September, 7)))
	assert.Equal(t, 2, WeekOfMonth(date(2024, time.September, 8)))
}
