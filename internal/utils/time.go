package utils

import (
	"time"

	"fieldagenda/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
// The result is midnight in the local timezone; event dates carry no
// timezone component of their own.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ParseClock parses a time-of-day string in the standard format (HH:MM).
func ParseClock(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ClockToMinutes parses a time-of-day string (HH:MM) and returns minutes
// from midnight.
func ClockToMinutes(timeStr string) (int, error) {
	t, err := ParseClock(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DateOf truncates a time to midnight, preserving its location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two times fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDate formats a time as a date string in the standard format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and a time string
// (HH:MM) into a single local time.Time.
func CombineDateAndTime(dateStr, timeStr string) (time.Time, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseClock(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, d.Location()), nil
}
