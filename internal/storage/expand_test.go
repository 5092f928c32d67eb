package storage

import (
	"testing"

	"fieldagenda/internal/models"
)

func baseEvent() models.Event {
	return models.Event{
		ID:        "base",
		Title:     "Weekly checkup",
		Type:      models.EventMaintenance,
		Date:      "2024-03-04",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.StatusScheduled,
		OwnerID:   "p1",
	}
}

func TestExpandWithoutRecurrence(t *testing.T) {
	ev := baseEvent()
	out, err := ExpandOccurrences(ev)
	if err != nil {
		t.Fatalf("ExpandOccurrences() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "base" {
		t.Errorf("expanded to %d events, want just the base", len(out))
	}
}

func TestExpandWeeklyUntil(t *testing.T) {
	ev := baseEvent()
	ev.Recurrence = &models.Recurrence{Frequency: models.FrequencyWeekly, Until: "2024-03-25"}

	out, err := ExpandOccurrences(ev)
	if err != nil {
		t.Fatalf("ExpandOccurrences() error = %v", err)
	}

	// Mar 4, 11, 18, 25: base plus three generated occurrences.
	if len(out) != 4 {
		t.Fatalf("expanded to %d events, want 4", len(out))
	}
	if out[0].ID != "base" || out[0].Recurrence == nil {
		t.Error("base event must come first and keep its rule")
	}

	wantDates := []string{"2024-03-04", "2024-03-11", "2024-03-18", "2024-03-25"}
	for i, occ := range out {
		if occ.Date != wantDates[i] {
			t.Errorf("occurrence %d date = %s, want %s", i, occ.Date, wantDates[i])
		}
		if occ.StartTime != "09:00" || occ.EndTime != "10:00" {
			t.Errorf("occurrence %d times = %s-%s", i, occ.StartTime, occ.EndTime)
		}
		if i > 0 {
			if occ.Recurrence != nil {
				t.Errorf("occurrence %d carries the rule", i)
			}
			if occ.ID == "base" || occ.ID == "" {
				t.Errorf("occurrence %d has no distinct id", i)
			}
		}
	}
}

func TestExpandDailyOpenEndedIsBounded(t *testing.T) {
	ev := baseEvent()
	ev.Recurrence = &models.Recurrence{Frequency: models.FrequencyDaily}

	out, err := ExpandOccurrences(ev)
	if err != nil {
		t.Fatalf("ExpandOccurrences() error = %v", err)
	}
	if len(out) < 300 {
		t.Errorf("open-ended daily rule expanded to only %d events", len(out))
	}
	if len(out) > 400 {
		t.Errorf("open-ended daily rule expanded to %d events, expected a one-year bound", len(out))
	}
}

func TestExpandRejectsBadInput(t *testing.T) {
	ev := baseEvent()
	ev.Date = "garbage"
	ev.Recurrence = &models.Recurrence{Frequency: models.FrequencyDaily}
	if _, err := ExpandOccurrences(ev); err == nil {
		t.Error("expected error for unparseable date")
	}

	ev = baseEvent()
	ev.Recurrence = &models.Recurrence{Frequency: "hourly"}
	if _, err := ExpandOccurrences(ev); err == nil {
		t.Error("expected error for unknown frequency")
	}
}
