// Package valueobject contains domain value objects for the Profit Tracker system.
package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateKeyLayout is the canonical layout of a day key (YYYY-MM-DD).
const DateKeyLayout = "2006-01-02"

var (
	dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	weekIDPattern  = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)
	monthIDPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// PeriodRange is an inclusive calendar range. Start is at the start of its day and
// End at the end of its day.
type PeriodRange struct {
	Start time.Time
	End   time.Time
}

// NewPeriodRange normalizes both bounds to whole days.
func NewPeriodRange(start, end time.Time) PeriodRange {
	return PeriodRange{Start: StartOfDay(start), End: EndOfDay(end)}
}

// Contains reports whether t falls inside the range.
func (p PeriodRange) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Days returns every calendar day of the range at midnight, in order.
func (p PeriodRange) Days() []time.Time {
	var days []time.Time
	for d := StartOfDay(p.Start); !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// DateOf returns t's wall-clock calendar day as midnight UTC. Date keys are computed
// without timezone conversion, so callers pass times already in the user's zone.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKeyOf formats the wall-clock calendar day of t as YYYY-MM-DD.
func DateKeyOf(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDateKey parses a YYYY-MM-DD key into midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	if !dateKeyPattern.MatchString(key) {
		return time.Time{}, fmt.Errorf("invalid date key %q: expected YYYY-MM-DD", key)
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// IsValidDateKey reports whether key is a real calendar date in YYYY-MM-DD form.
func IsValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// isoWeekday numbers the week Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday
}

// isoThursday returns the Thursday of the ISO week containing t.
func isoThursday(t time.Time) time.Time {
	d := DateOf(t)
	return d.AddDate(0, 0, 4-isoWeekday(d))
}

// ISOWeekNumberOf returns the ISO-8601 week number of t. The date is shifted to the
// Thursday of its week and the week is counted from January 1 of that Thursday's year.
func ISOWeekNumberOf(t time.Time) int {
	thursday := isoThursday(t)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSince := int(thursday.Sub(yearStart).Hours() / 24)
	return daysSince/7 + 1
}

// ISOWeekYearOf returns the year an ISO week belongs to (the year of its Thursday).
func ISOWeekYearOf(t time.Time) int {
	return isoThursday(t).Year()
}

// WeekIDOf returns the YYYY-Www identifier of t's ISO week. The year is the ISO week-basis
// year, so 2024-12-30 yields "2025-W01" and 2023-01-01 yields "2022-W52".
func WeekIDOf(t time.Time) string {
	return fmt.Sprintf("%04d-W%02d", ISOWeekYearOf(t), ISOWeekNumberOf(t))
}

// MonthIDOf returns the YYYY-MM identifier of t's month.
func MonthIDOf(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// WeeksInISOYear returns 52 or 53. December 28 always falls in the last ISO week.
func WeeksInISOYear(year int) int {
	return ISOWeekNumberOf(time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC))
}

// ISOWeekStart returns the Monday that begins ISO week `week` of `year`. Week 1 is the
// week containing January 4.
func ISOWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, 1-isoWeekday(jan4))
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

// ParseWeekID parses a YYYY-Www identifier.
func ParseWeekID(id string) (year, week int, err error) {
	m := weekIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid week id %q: expected YYYY-Www", id)
	}
	year, _ = strconv.Atoi(m[1])
	week, _ = strconv.Atoi(m[2])
	if week < 1 || week > WeeksInISOYear(year) {
		return 0, 0, fmt.Errorf("invalid week id %q: week %d out of range", id, week)
	}
	return year, week, nil
}

// ParseMonthID parses a YYYY-MM identifier.
func ParseMonthID(id string) (year int, month time.Month, err error) {
	m := monthIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid month id %q: expected YYYY-MM", id)
	}
	year, _ = strconv.Atoi(m[1])
	monthNum, _ := strconv.Atoi(m[2])
	if monthNum < 1 || monthNum > 12 {
		return 0, 0, fmt.Errorf("invalid month id %q: month %d out of range", id, monthNum)
	}
	return year, time.Month(monthNum), nil
}

// WeekRange returns the Monday to Sunday range of the identified ISO week.
func WeekRange(id string) (PeriodRange, error) {
	year, week, err := ParseWeekID(id)
	if err != nil {
		return PeriodRange{}, err
	}
	start := ISOWeekStart(year, week)
	return NewPeriodRange(start, start.AddDate(0, 0, 6)), nil
}

// MonthRange returns the first-to-last-day range of the identified month.
func MonthRange(id string) (PeriodRange, error) {
	year, month, err := ParseMonthID(id)
	if err != nil {
		return PeriodRange{}, err
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return NewPeriodRange(start, start.AddDate(0, 1, -1)), nil
}

// WeekOfMonth returns the 1-based row of t in a Sunday-first month grid.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return (t.Day()+int(first.Weekday())-1)/7 + 1
}
