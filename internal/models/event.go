package models

type EventType string

const (
	EventMeeting      EventType = "meeting"
	EventFieldVisit   EventType = "field_visit"
	EventMaintenance  EventType = "maintenance"
	EventInstallation EventType = "installation"
	EventTraining     EventType = "training"
	EventOther        EventType = "other"
)

type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCompleted EventStatus = "completed"
	StatusCanceled  EventStatus = "canceled"
)

// Terminal reports whether the status admits no further status changes.
// Deletion is a separate operation and stays available from any status.
func (s EventStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
	FrequencyYearly  RecurrenceFrequency = "yearly"
)

type Recurrence struct {
	Frequency RecurrenceFrequency `json:"frequency"`
	Until     string              `json:"until,omitempty"` // YYYY-MM-DD format
}

type Event struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Type           EventType   `json:"type"`
	Date           string      `json:"date"`       // YYYY-MM-DD format
	StartTime      string      `json:"start_time"` // HH:MM format
	EndTime        string      `json:"end_time"`   // HH:MM format
	Status         EventStatus `json:"status"`
	Location       string      `json:"location,omitempty"`
	Description    string      `json:"description,omitempty"`
	OwnerID        string      `json:"owner_id"`
	LinkedTicketID string      `json:"linked_ticket_id,omitempty"`
	Recurrence     *Recurrence `json:"recurrence,omitempty"`
}

// EventDraft is the caller-supplied shape for creating an event. IDs and
// status are assigned by the lifecycle service, never by the caller.
type EventDraft struct {
	Title          string      `json:"title"`
	Type           EventType   `json:"type"`
	Date           string      `json:"date"`
	StartTime      string      `json:"start_time"`
	EndTime        string      `json:"end_time"`
	Location       string      `json:"location,omitempty"`
	Description    string      `json:"description,omitempty"`
	OwnerID        string      `json:"owner_id"`
	LinkedTicketID string      `json:"linked_ticket_id,omitempty"`
	Recurrence     *Recurrence `json:"recurrence,omitempty"`
}

type Participant struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

type Reminder struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	RemindAt string `json:"remind_at"` // RFC3339 timestamp
	Channel  string `json:"channel,omitempty"`
}

// Ticket is the reference record the assignment flow snapshots from. Only the
// fields needed to derive an event's title, description and location live
// here; the full ticket workflow belongs to the backend.
type Ticket struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Motive     string `json:"motive"`
	Location   string `json:"location,omitempty"`
}
