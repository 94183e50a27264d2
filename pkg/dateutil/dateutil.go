package dateutil

import (
	"fmt"
	"time"
)

// DateFormat is the canonical form for calendar dates
// Example: 2022-12-01
const DateFormat = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Normalize reduces an instant to its calendar day in the local timezone.
// Two instants falling on the same local calendar day normalize to equal
// values regardless of their time-of-day or input timezone.
func Normalize(date time.Time) time.Time {
	return StartOfDay(date.In(time.Local))
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats a date in the canonical YYYY-MM-DD form
func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

// ParseDate parses a date string in one of the supported formats and
// anchors it to the local timezone
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return Normalize(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", dateStr)
}

// WeekendDates returns every Saturday and Sunday from start to end
// inclusive, in chronological order, formatted as YYYY-MM-DD.
// Callers must ensure start <= end.
func WeekendDates(start, end time.Time) []string {
	start = Normalize(start)
	end = Normalize(end)

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			dates = append(dates, FormatDate(d))
		}
	}

	return dates
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Today returns today's date (start of day)
func Today() time.Time {
	return Normalize(time.Now())
}
