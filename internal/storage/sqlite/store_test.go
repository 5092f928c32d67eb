package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"fieldagenda/internal/models"
	"fieldagenda/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEvent(id, date, owner string) models.Event {
	return models.Event{
		ID:        id,
		Title:     "Site visit",
		Type:      models.EventFieldVisit,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.StatusScheduled,
		OwnerID:   owner,
	}
}

func TestCreateAndGetEvent(t *testing.T) {
	s := newTestStore(t)

	ev := testEvent("e1", "2024-03-10", "p1")
	ev.Location = "Plant 7"
	ev.Description = "Quarterly inspection"
	created, err := s.CreateEvent(ev)
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("CreateEvent() stored %d rows, want 1", len(created))
	}

	got, err := s.GetEvent("e1")
	if err != nil {
		t.Fatalf("GetEvent() error = %v", err)
	}
	if got.Title != ev.Title || got.Location != "Plant 7" || got.Status != models.StatusScheduled {
		t.Errorf("GetEvent() = %+v", got)
	}
}

func TestCreateEventExpandsRecurrence(t *testing.T) {
	s := newTestStore(t)

	ev := testEvent("e1", "2024-03-04", "p1")
	ev.Recurrence = &models.Recurrence{Frequency: models.FrequencyWeekly, Until: "2024-03-18"}
	created, err := s.CreateEvent(ev)
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("CreateEvent() stored %d rows, want 3", len(created))
	}

	events, err := s.GetEventsForRange(storage.EventFilter{OwnerID: "p1"}, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetEventsForRange() error = %v", err)
	}
	if len(events) != 3 {
		t.Errorf("range fetch returned %d events, want 3", len(events))
	}

	base, err := s.GetEvent("e1")
	if err != nil {
		t.Fatalf("GetEvent() error = %v", err)
	}
	if base.Recurrence == nil || base.Recurrence.Frequency != models.FrequencyWeekly {
		t.Errorf("base event lost its recurrence rule: %+v", base.Recurrence)
	}
}

func TestGetEventsForRangeFilters(t *testing.T) {
	s := newTestStore(t)

	for _, ev := range []models.Event{
		testEvent("in-range", "2024-03-10", "p1"),
		testEvent("other-owner", "2024-03-10", "p2"),
		testEvent("team-member", "2024-03-12", "p3"),
		testEvent("before", "2024-02-01", "p1"),
		testEvent("after", "2024-04-01", "p1"),
	} {
		if _, err := s.CreateEvent(ev); err != nil {
			t.Fatalf("CreateEvent(%s) error = %v", ev.ID, err)
		}
	}

	byOwner, err := s.GetEventsForRange(storage.EventFilter{OwnerID: "p1"}, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetEventsForRange() error = %v", err)
	}
	if len(byOwner) != 1 || byOwner[0].ID != "in-range" {
		t.Errorf("owner filter returned %+v", byOwner)
	}

	byTeam, err := s.GetEventsForRange(storage.EventFilter{OwnerIDs: []string{"p2", "p3"}}, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetEventsForRange() error = %v", err)
	}
	if len(byTeam) != 2 {
		t.Errorf("team filter returned %d events, want 2", len(byTeam))
	}

	all, err := s.GetEventsForRange(storage.EventFilter{}, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetEventsForRange() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered fetch returned %d events, want 3", len(all))
	}
}

func TestUpdateEventStatus(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateEvent(testEvent("e1", "2024-03-10", "p1")); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if err := s.UpdateEventStatus("e1", models.StatusCompleted); err != nil {
		t.Fatalf("UpdateEventStatus() error = %v", err)
	}
	got, _ := s.GetEvent("e1")
	if got.Status != models.StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}

	err := s.UpdateEventStatus("missing", models.StatusCompleted)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateEventStatus(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEventCascades(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateEvent(testEvent("e1", "2024-03-10", "p1")); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	for _, p := range []models.Participant{
		{ID: "pa1", EventID: "e1", Name: "Ana"},
		{ID: "pa2", EventID: "e1", Name: "Bruno"},
	} {
		if err := s.AddParticipant(p); err != nil {
			t.Fatalf("AddParticipant() error = %v", err)
		}
	}
	if err := s.AddReminder(models.Reminder{ID: "r1", EventID: "e1", RemindAt: "2024-03-10T08:00:00Z"}); err != nil {
		t.Fatalf("AddReminder() error = %v", err)
	}

	if err := s.DeleteEvent("e1"); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}

	if _, err := s.GetEvent("e1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("event still present after delete: %v", err)
	}
	parts, _ := s.GetParticipants("e1")
	if len(parts) != 0 {
		t.Errorf("%d participants orphaned after delete", len(parts))
	}
	rems, _ := s.GetReminders("e1")
	if len(rems) != 0 {
		t.Errorf("%d reminders orphaned after delete", len(rems))
	}
}

func TestDeleteMissingEventLeavesDependentsAlone(t *testing.T) {
	// Deleting an id that does not exist must roll back the dependent
	// deletes too; rows attached to other events stay put.
	s := newTestStore(t)
	if _, err := s.CreateEvent(testEvent("e1", "2024-03-10", "p1")); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if err := s.AddParticipant(models.Participant{ID: "pa1", EventID: "e1", Name: "Ana"}); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}

	if err := s.DeleteEvent("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("DeleteEvent(missing) error = %v, want ErrNotFound", err)
	}

	parts, _ := s.GetParticipants("e1")
	if len(parts) != 1 {
		t.Errorf("unrelated participants affected by failed delete: %d left", len(parts))
	}
	if _, err := s.GetEvent("e1"); err != nil {
		t.Errorf("unrelated event affected by failed delete: %v", err)
	}
}

func TestTicketsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	ticket := models.Ticket{ID: "t1", ClientName: "Acme Corp", Motive: "compressor failure", Location: "Plant 7"}
	if err := s.AddTicket(ticket); err != nil {
		t.Fatalf("AddTicket() error = %v", err)
	}

	got, err := s.GetTicket("t1")
	if err != nil {
		t.Fatalf("GetTicket() error = %v", err)
	}
	if got != ticket {
		t.Errorf("GetTicket() = %+v, want %+v", got, ticket)
	}

	if _, err := s.GetTicket("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetTicket(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	// Unset settings come back as zero values, not an error.
	st, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if st.WeekStart != 0 || st.DefaultOwnerID != "" {
		t.Errorf("fresh settings = %+v", st)
	}

	if err := s.SaveSettings(models.Settings{WeekStart: 1, DefaultOwnerID: "p1"}); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	st, err = s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if st.WeekStart != 1 || st.DefaultOwnerID != "p1" {
		t.Errorf("settings = %+v", st)
	}

	// Saving again overwrites the single row.
	if err := s.SaveSettings(models.Settings{WeekStart: 0, DefaultOwnerID: "p2"}); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	st, _ = s.GetSettings()
	if st.DefaultOwnerID != "p2" {
		t.Errorf("settings after overwrite = %+v", st)
	}
}
