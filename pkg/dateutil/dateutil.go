package dateutil

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// DaysInMonth returns the number of calendar days of the month containing t
func DaysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// ParseMonth parses a YYYY-MM month
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return t, nil
}

// DaysInMonthOf returns the number of days of a YYYY-MM month
func DaysInMonthOf(month string) (int, error) {
	t, err := ParseMonth(month)
	if err != nil {
		return 0, err
	}
	return DaysInMonth(t), nil
}

// ReferenceDays counts calendar days between start and end, both included
func ReferenceDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ParseReferencePeriod parses two YYYY-MM-DD dates and returns the day count of the period
func ParseReferencePeriod(from, to string) (int, error) {
	start, err := time.Parse(time.DateOnly, from)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", from, err)
	}
	end, err := time.Parse(time.DateOnly, to)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", to, err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s", to, from)
	}
	return ReferenceDays(start, end), nil
}
