package valueobject

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDays lists the calendar days from start to end inclusive, at midnight in start's
// location. Saturdays and Sundays are omitted when excludeWeekends is set. The result is
// empty when start is after end.
func WorkingDays(start, end time.Time, excludeWeekends bool) []time.Time {
	from := StartOfDay(start)
	to := StartOfDay(end.In(start.Location()))

	days := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if excludeWeekends && IsWeekend(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}
