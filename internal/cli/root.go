package cli

import (
	"fmt"
	"strings"

	"fieldagenda/internal/calendar"
	"fieldagenda/internal/models"
	"fieldagenda/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// OwnerFilter builds the fetch filter from the owner/team flags a command
// accepts. The team flag takes a comma-separated list of professional ids.
func OwnerFilter(owner, team string) storage.EventFilter {
	if team != "" {
		var ids []string
		for _, id := range strings.Split(team, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}
		return storage.EventFilter{OwnerIDs: ids}
	}
	return storage.EventFilter{OwnerID: owner}
}

// ParseEventType maps a flag value to an event type.
func ParseEventType(s string) (models.EventType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meeting":
		return models.EventMeeting, nil
	case "field_visit", "visit":
		return models.EventFieldVisit, nil
	case "maintenance":
		return models.EventMaintenance, nil
	case "installation":
		return models.EventInstallation, nil
	case "training":
		return models.EventTraining, nil
	case "other", "":
		return models.EventOther, nil
	default:
		return "", fmt.Errorf("invalid event type: %s (use meeting, field_visit, maintenance, installation, training, or other)", s)
	}
}

// ParseViewMode maps a flag value to a calendar view mode.
func ParseViewMode(s string) (calendar.ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "d":
		return calendar.ViewDay, nil
	case "week", "w":
		return calendar.ViewWeek, nil
	case "month", "m", "":
		return calendar.ViewMonth, nil
	default:
		return "", fmt.Errorf("invalid view mode: %s (use day, week, or month)", s)
	}
}

// FormatRecurrence renders a recurrence rule for display.
func FormatRecurrence(rec *models.Recurrence) string {
	if rec == nil {
		return "none"
	}
	if rec.Until != "" {
		return fmt.Sprintf("%s until %s", rec.Frequency, rec.Until)
	}
	return string(rec.Frequency)
}
