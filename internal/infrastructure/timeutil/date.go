package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format used throughout the analyzer.
const DateLayout = "2006-01-02"

// DateOnly truncates t to its calendar date at midnight UTC.
// All stay accounting operates on values produced by this function.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOnly(t), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays returns the date days calendar days after t, normalized.
func AddDays(t time.Time, days int) time.Time {
	return DateOnly(t).AddDate(0, 0, days)
}

// DaysBetween returns the number of calendar days from start to end,
// counting both boundary days: same date yields 1. Returns 0 when end
// precedes start.
func DaysBetween(start, end time.Time) int {
	s := DateOnly(start)
	e := DateOnly(end)
	if e.Before(s) {
		return 0
	}
	// Both values are midnight UTC, so the division is exact.
	return int(e.Sub(s).Hours()/24) + 1
}

// Later returns the later of two dates.
func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// Earlier returns the earlier of two dates.
func Earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
