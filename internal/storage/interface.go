package storage

import (
	"errors"

	"fieldagenda/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// EventFilter scopes a range fetch to one professional or to a team. An
// empty filter matches every owner.
type EventFilter struct {
	OwnerID  string
	OwnerIDs []string
}

// Empty reports whether the filter matches all owners.
func (f EventFilter) Empty() bool {
	return f.OwnerID == "" && len(f.OwnerIDs) == 0
}

// Provider is the persistence boundary. The calendar engine never talks to
// the database directly; it holds only the in-memory snapshot a fetch
// returned.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Events. CreateEvent expands the event's recurrence rule into concrete
	// occurrence rows and returns everything it stored, base event first.
	CreateEvent(models.Event) ([]models.Event, error)
	GetEvent(id string) (models.Event, error)
	GetEventsForRange(filter EventFilter, rangeStart, rangeEnd string) ([]models.Event, error)
	UpdateEvent(models.Event) error
	UpdateEventStatus(id string, status models.EventStatus) error
	// DeleteEvent removes the event and its participants and reminders as
	// one atomic unit; a partial deletion must never be observable.
	DeleteEvent(id string) error

	// Participants
	AddParticipant(models.Participant) error
	GetParticipants(eventID string) ([]models.Participant, error)

	// Reminders
	AddReminder(models.Reminder) error
	GetReminders(eventID string) ([]models.Reminder, error)

	// Tickets
	AddTicket(models.Ticket) error
	GetTicket(id string) (models.Ticket, error)

	// Utils
	GetConfigPath() string
}
