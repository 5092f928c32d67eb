package calendar

import (
	"testing"
	"time"

	"fieldagenda/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

var testNow = date(2024, time.March, 15)

func TestBuildDayView(t *testing.T) {
	g := Build(date(2024, time.March, 15), ViewDay, time.Sunday, testNow)

	if len(g.Cells) != 24 {
		t.Fatalf("day grid has %d cells, want 24", len(g.Cells))
	}
	if g.Cells[0].Start.Hour() != 0 || g.Cells[23].Start.Hour() != 23 {
		t.Errorf("hour buckets span %d..%d, want 0..23", g.Cells[0].Start.Hour(), g.Cells[23].Start.Hour())
	}
	for i, c := range g.Cells {
		if !c.CurrentPeriod {
			t.Errorf("cell %d not marked current period", i)
		}
		if !c.Today {
			t.Errorf("cell %d not marked today", i)
		}
	}
}

func TestBuildWeekView(t *testing.T) {
	g := Build(date(2024, time.March, 15), ViewWeek, time.Sunday, testNow)

	if len(g.Cells) != 7*24 {
		t.Fatalf("week grid has %d cells, want 168", len(g.Cells))
	}
	// March 15, 2024 is a Friday; its Sunday-start week begins March 10.
	if !g.RangeStart.Equal(date(2024, time.March, 10)) {
		t.Errorf("week starts %v, want March 10", g.RangeStart)
	}
	if !g.RangeEnd.Equal(date(2024, time.March, 16)) {
		t.Errorf("week ends %v, want March 16", g.RangeEnd)
	}

	cell := g.CellAt(5, 9) // Friday 09:00
	if cell == nil {
		t.Fatal("CellAt(5, 9) returned nil")
	}
	if cell.Start.Day() != 15 || cell.Start.Hour() != 9 {
		t.Errorf("CellAt(5, 9) = %v, want March 15 09:00", cell.Start)
	}
	if !cell.Today {
		t.Error("Friday column not marked today")
	}
}

func TestBuildMonthView(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantCells int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "March 2024 pads to six weeks",
			anchor:    date(2024, time.March, 15),
			wantCells: 42,
			wantStart: date(2024, time.February, 25),
			wantEnd:   date(2024, time.April, 6),
		},
		{
			name:      "April 2024 pads to five weeks",
			anchor:    date(2024, time.April, 15),
			wantCells: 35,
			wantStart: date(2024, time.March, 31),
			wantEnd:   date(2024, time.May, 4),
		},
		{
			name:      "February 2026 needs no padding",
			anchor:    date(2026, time.February, 10),
			wantCells: 28,
			wantStart: date(2026, time.February, 1),
			wantEnd:   date(2026, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.anchor, ViewMonth, time.Sunday, testNow)
			if len(g.Cells) != tt.wantCells {
				t.Errorf("month grid has %d cells, want %d", len(g.Cells), tt.wantCells)
			}
			if !g.RangeStart.Equal(tt.wantStart) {
				t.Errorf("range starts %v, want %v", g.RangeStart, tt.wantStart)
			}
			if !g.RangeEnd.Equal(tt.wantEnd) {
				t.Errorf("range ends %v, want %v", g.RangeEnd, tt.wantEnd)
			}
		})
	}
}

func TestMonthGridLengthInvariant(t *testing.T) {
	// Every month of a leap and a non-leap year: length is a multiple of
	// seven within [28, 42], and out-of-month cells stay event-eligible.
	for _, year := range []int{2023, 2024} {
		for m := time.January; m <= time.December; m++ {
			g := Build(date(year, m, 15), ViewMonth, time.Sunday, testNow)
			n := len(g.Cells)
			if n%7 != 0 || n < 28 || n > 42 {
				t.Errorf("%v %d: %d cells", m, year, n)
			}
			for i, c := range g.Cells {
				if c.Start.Month() != m && c.CurrentPeriod {
					t.Errorf("%v %d: out-of-month cell %d marked current", m, year, i)
				}
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	for _, mode := range []ViewMode{ViewDay, ViewWeek, ViewMonth} {
		a := Build(date(2024, time.March, 15), mode, time.Sunday, testNow)
		b := Build(date(2024, time.March, 15), mode, time.Sunday, testNow)
		if len(a.Cells) != len(b.Cells) {
			t.Fatalf("%s: cell counts differ", mode)
		}
		for i := range a.Cells {
			if !a.Cells[i].Start.Equal(b.Cells[i].Start) || !a.Cells[i].End.Equal(b.Cells[i].End) {
				t.Errorf("%s: cell %d differs between builds", mode, i)
			}
		}
	}
}

func TestCellVisibleAndOverflow(t *testing.T) {
	c := Cell{DisplayCap: 4}
	for i := 0; i < 7; i++ {
		c.Events = append(c.Events, models.Event{ID: string(rune('a' + i))})
	}

	if got := len(c.Visible()); got != 4 {
		t.Errorf("Visible() returned %d events, want 4", got)
	}
	if got := c.Overflow(); got != 3 {
		t.Errorf("Overflow() = %d, want 3", got)
	}
	if len(c.Events) != 7 {
		t.Errorf("underlying event set shrank to %d", len(c.Events))
	}

	uncapped := Cell{Events: c.Events}
	if len(uncapped.Visible()) != 7 || uncapped.Overflow() != 0 {
		t.Error("uncapped cell should expose all events")
	}
}
