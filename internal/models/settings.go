package models

import "time"

type Settings struct {
	// WeekStart is the first day of the week for grid layout (0=Sunday).
	WeekStart int `json:"week_start"`

	// DefaultOwnerID scopes fetches when no owner flag is given.
	DefaultOwnerID string `json:"default_owner_id,omitempty"`
}

// WeekStartDay converts the stored integer to a time.Weekday, falling back to
// Sunday for out-of-range values.
func (s Settings) WeekStartDay() time.Weekday {
	if s.WeekStart < 0 || s.WeekStart > 6 {
		return time.Sunday
	}
	return time.Weekday(s.WeekStart)
}
