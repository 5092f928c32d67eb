package calendar

import (
	"testing"
	"time"

	"fieldagenda/internal/models"
)

func ev(id, date, start, end string) models.Event {
	return models.Event{
		ID:        id,
		Title:     id,
		Type:      models.EventMeeting,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    models.StatusScheduled,
		OwnerID:   "p1",
	}
}

func TestBindHourFloor(t *testing.T) {
	// Two events at 09:00 and 09:30 share the 09:00 bucket, ordered by
	// start time.
	g := Build(date(2024, time.March, 15), ViewDay, time.Sunday, testNow)
	bound := Bind(g, []models.Event{
		ev("later", "2024-03-15", "09:30", "10:30"),
		ev("earlier", "2024-03-15", "09:00", "10:00"),
	})

	cell := bound.CellAt(0, 9)
	if cell == nil || len(cell.Events) != 2 {
		t.Fatalf("09:00 bucket has %v events, want 2", cell)
	}
	if cell.Events[0].ID != "earlier" || cell.Events[1].ID != "later" {
		t.Errorf("bucket order = [%s %s], want [earlier later]", cell.Events[0].ID, cell.Events[1].ID)
	}
	if c := bound.CellAt(0, 10); len(c.Events) != 0 {
		t.Errorf("10:00 bucket has %d events, want 0", len(c.Events))
	}
}

func TestBindWeekPlacement(t *testing.T) {
	g := Build(date(2024, time.March, 15), ViewWeek, time.Sunday, testNow)
	bound := Bind(g, []models.Event{
		ev("mon", "2024-03-11", "08:00", "09:00"),
		ev("fri", "2024-03-15", "16:45", "17:30"),
	})

	if c := bound.CellAt(1, 8); len(c.Events) != 1 || c.Events[0].ID != "mon" {
		t.Errorf("Monday 08:00 bucket = %+v", c.Events)
	}
	if c := bound.CellAt(5, 16); len(c.Events) != 1 || c.Events[0].ID != "fri" {
		t.Errorf("Friday 16:00 bucket = %+v", c.Events)
	}
}

func TestBindMonthPlacement(t *testing.T) {
	// A March 10 maintenance event appears in exactly one cell of the
	// March 2024 grid, carrying the maintenance style token.
	g := Build(date(2024, time.March, 15), ViewMonth, time.Sunday, testNow)
	target := ev("m1", "2024-03-10", "10:00", "11:00")
	target.Type = models.EventMaintenance
	bound := Bind(g, []models.Event{target})

	found := 0
	for i := range bound.Cells {
		for _, e := range bound.Cells[i].Events {
			if e.ID != "m1" {
				continue
			}
			found++
			if bound.Cells[i].Start.Day() != 10 || bound.Cells[i].Start.Month() != time.March {
				t.Errorf("event placed in cell starting %v", bound.Cells[i].Start)
			}
			if TokenFor(e.Type) != TokenMaintenance {
				t.Errorf("style token = %s, want maintenance", TokenFor(e.Type))
			}
		}
	}
	if found != 1 {
		t.Errorf("event appears in %d cells, want 1", found)
	}
}

func TestBindOutOfMonthCellAcceptsEvents(t *testing.T) {
	// Feb 26 sits in the leading padding of the March 2024 grid but is still
	// a valid placement target.
	g := Build(date(2024, time.March, 15), ViewMonth, time.Sunday, testNow)
	bound := Bind(g, []models.Event{ev("pad", "2024-02-26", "09:00", "10:00")})

	cell := bound.CellAt(1, 0)
	if len(cell.Events) != 1 || cell.Events[0].ID != "pad" {
		t.Fatalf("padding cell events = %+v", cell.Events)
	}
	if cell.CurrentPeriod {
		t.Error("padding cell marked as current period")
	}
}

func TestBindNoDataLoss(t *testing.T) {
	g := Build(date(2024, time.March, 15), ViewMonth, time.Sunday, testNow)
	var events []models.Event
	for i := 0; i < 9; i++ {
		e := ev(string(rune('a'+i)), "2024-03-20", "08:00", "09:00")
		e.StartTime = time.Date(2024, 3, 20, 8+i, 0, 0, 0, time.UTC).Format("15:04")
		events = append(events, e)
	}
	bound := Bind(g, events)

	// All nine land in the single March 20 cell; the display cap hides five
	// but drops none.
	if got := bound.EventCount(); got != len(events) {
		t.Fatalf("bound %d events, want %d", got, len(events))
	}
	for i := range bound.Cells {
		c := &bound.Cells[i]
		if len(c.Events) == 0 {
			continue
		}
		if len(c.Visible()) != 4 {
			t.Errorf("Visible() = %d events, want 4", len(c.Visible()))
		}
		if c.Overflow() != 5 {
			t.Errorf("Overflow() = %d, want 5", c.Overflow())
		}
	}

	seen := map[string]bool{}
	for i := range bound.Cells {
		for _, e := range bound.Cells[i].Events {
			seen[e.ID] = true
		}
	}
	for _, e := range events {
		if !seen[e.ID] {
			t.Errorf("event %s lost in binding", e.ID)
		}
	}
}

func TestBindExcludesMalformedRecords(t *testing.T) {
	g := Build(date(2024, time.March, 15), ViewDay, time.Sunday, testNow)
	bound := Bind(g, []models.Event{
		ev("ok", "2024-03-15", "10:00", "11:00"),
		ev("bad-date", "not-a-date", "10:00", "11:00"),
		ev("bad-time", "2024-03-15", "1030", "11:00"),
		ev("empty-date", "", "10:00", "11:00"),
	})

	if got := bound.EventCount(); got != 1 {
		t.Fatalf("bound %d events, want 1 (malformed excluded)", got)
	}
	if c := bound.CellAt(0, 10); len(c.Events) != 1 || c.Events[0].ID != "ok" {
		t.Errorf("10:00 bucket = %+v", c.Events)
	}
}

func TestBindDoesNotMutateInput(t *testing.T) {
	g := Build(date(2024, time.March, 15), ViewDay, time.Sunday, testNow)
	_ = Bind(g, []models.Event{ev("x", "2024-03-15", "10:00", "11:00")})

	for i := range g.Cells {
		if len(g.Cells[i].Events) != 0 {
			t.Fatal("Bind mutated the input grid")
		}
	}
}
