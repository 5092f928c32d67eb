package calendar

import (
	"sort"
	"time"

	"fieldagenda/internal/models"
	"fieldagenda/internal/utils"
)

// Bind distributes events into the grid's buckets and returns the populated
// grid. It is pure: the input grid is not mutated and repeated calls with the
// same inputs yield the same result.
//
// Placement keys: in month mode an event matches its day cell; in day/week
// mode it matches the day column plus the hour floor of its start time, so a
// 10:30 event lands in the 10:00 bucket. Events within a cell are ordered by
// start time ascending.
//
// Binding is total: a record whose date or start time does not parse is
// excluded from placement instead of failing the whole grid.
func Bind(g Grid, events []models.Event) Grid {
	out := g
	out.Cells = make([]Cell, len(g.Cells))
	copy(out.Cells, g.Cells)
	for i := range out.Cells {
		out.Cells[i].Events = nil
	}

	for _, ev := range events {
		date, err := utils.ParseDate(ev.Date)
		if err != nil {
			continue
		}
		startMin, err := utils.ClockToMinutes(ev.StartTime)
		if err != nil {
			continue
		}

		cell := locateCell(&out, date, startMin/60)
		if cell == nil {
			continue
		}
		cell.Events = append(cell.Events, ev)
	}

	for i := range out.Cells {
		evs := out.Cells[i].Events
		sort.SliceStable(evs, func(a, b int) bool {
			return evs[a].StartTime < evs[b].StartTime
		})
	}

	return out
}

func locateCell(g *Grid, date time.Time, hour int) *Cell {
	if date.Before(g.RangeStart) || date.After(g.RangeEnd) {
		return nil
	}
	day := daysBetween(g.RangeStart, date)
	if g.Mode == ViewMonth {
		return g.CellAt(day, 0)
	}
	return g.CellAt(day, hour)
}

// daysBetween counts calendar days from a to b. Both are normalized to UTC
// midnights first so a DST transition cannot skew the division.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
