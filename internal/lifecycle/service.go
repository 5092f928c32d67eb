package lifecycle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fieldagenda/internal/logger"
	"fieldagenda/internal/models"
	"fieldagenda/internal/storage"
	"fieldagenda/internal/validation"
)

var (
	// ErrStatusFinal is returned when a status change targets an event
	// already completed or canceled. Deletion remains available.
	ErrStatusFinal = errors.New("event status is final and cannot change")

	// ErrInvalidTransition is returned for status values that are not a
	// legal transition target (only completed and canceled are).
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Service drives the event lifecycle against the persistence boundary:
// create, status transitions, cascading deletion, and ticket assignment.
// Validation always runs before the store is touched, so a rejected
// operation leaves no partial state anywhere.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Create validates the draft and stores it as a scheduled event. If the
// draft carries a recurrence rule, the store expands it into concrete
// occurrences; the returned event is the base occurrence.
func (s *Service) Create(draft models.EventDraft) (models.Event, error) {
	if err := validation.ValidateDraft(draft).Err(); err != nil {
		return models.Event{}, err
	}

	ev := models.Event{
		ID:             uuid.New().String(),
		Title:          draft.Title,
		Type:           draft.Type,
		Date:           draft.Date,
		StartTime:      draft.StartTime,
		EndTime:        draft.EndTime,
		Status:         models.StatusScheduled,
		Location:       draft.Location,
		Description:    draft.Description,
		OwnerID:        draft.OwnerID,
		LinkedTicketID: draft.LinkedTicketID,
		Recurrence:     draft.Recurrence,
	}
	if ev.Type == "" {
		ev.Type = models.EventOther
	}

	created, err := s.store.CreateEvent(ev)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	logger.Info("Event created", "id", ev.ID, "occurrences", len(created))
	return created[0], nil
}

// UpdateStatus moves an event from scheduled to completed or canceled.
// Both targets are terminal: once there, further status changes are
// rejected with ErrStatusFinal.
func (s *Service) UpdateStatus(id string, status models.EventStatus) error {
	if status != models.StatusCompleted && status != models.StatusCanceled {
		return fmt.Errorf("%w: %q", ErrInvalidTransition, status)
	}

	ev, err := s.store.GetEvent(id)
	if err != nil {
		return err
	}
	if ev.Status.Terminal() {
		return fmt.Errorf("%w: event %s is %s", ErrStatusFinal, id, ev.Status)
	}

	if err := s.store.UpdateEventStatus(id, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	logger.Info("Event status changed", "id", id, "status", status)
	return nil
}

// Delete removes an event and its participants and reminders as one atomic
// unit. It is allowed from any status, terminal ones included, and cannot
// be undone.
func (s *Service) Delete(id string) error {
	if err := s.store.DeleteEvent(id); err != nil {
		return err
	}
	logger.Info("Event deleted", "id", id)
	return nil
}

// AssignTicket creates one scheduled event for a support ticket. Title,
// description and location are copied from the ticket's reference data at
// this moment; later ticket edits do not reach the event.
func (s *Service) AssignTicket(ticketID, professionalID, date, startTime, endTime string) (models.Event, error) {
	ticket, err := s.store.GetTicket(ticketID)
	if err != nil {
		return models.Event{}, err
	}

	draft := models.EventDraft{
		Title:          fmt.Sprintf("%s: %s", ticket.ClientName, ticket.Motive),
		Type:           models.EventMaintenance,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Location:       ticket.Location,
		Description:    ticket.Motive,
		OwnerID:        professionalID,
		LinkedTicketID: ticket.ID,
	}
	ev, err := s.Create(draft)
	if err != nil {
		return models.Event{}, err
	}
	logger.Info("Ticket assigned", "ticket", ticketID, "event", ev.ID, "professional", professionalID)
	return ev, nil
}
