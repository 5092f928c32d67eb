package calendar

import (
	"time"

	"fieldagenda/internal/constants"
	"fieldagenda/internal/models"
	"fieldagenda/internal/utils"
)

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Cell is a single time bucket: an hour in day/week mode, a day in month
// mode. Events holds the full placed set; the display cap only limits what
// Visible returns, never what is stored.
type Cell struct {
	Start time.Time
	End   time.Time

	// CurrentPeriod is false for the leading/trailing out-of-month days
	// padding a month grid to whole weeks. Those cells still accept events.
	CurrentPeriod bool
	Today         bool

	Events []models.Event

	// DisplayCap is the per-cell render limit (0 = uncapped).
	DisplayCap int
}

// Visible returns the events to render directly, honoring the display cap.
func (c *Cell) Visible() []models.Event {
	if c.DisplayCap <= 0 || len(c.Events) <= c.DisplayCap {
		return c.Events
	}
	return c.Events[:c.DisplayCap]
}

// Overflow returns how many events are hidden behind the display cap.
func (c *Cell) Overflow() int {
	if c.DisplayCap <= 0 || len(c.Events) <= c.DisplayCap {
		return 0
	}
	return len(c.Events) - c.DisplayCap
}

// Grid is an ordered bucket sequence for one anchor/view combination.
// Day mode: 24 hour cells. Week mode: 7 days x 24 hours, day-major.
// Month mode: 28-42 day cells covering whole weeks.
type Grid struct {
	Mode   ViewMode
	Anchor time.Time

	// RangeStart and RangeEnd are the first and last visible days, inclusive.
	RangeStart time.Time
	RangeEnd   time.Time

	Cells []Cell
}

// Days returns the number of day columns in the grid.
func (g *Grid) Days() int {
	switch g.Mode {
	case ViewDay:
		return 1
	case ViewWeek:
		return constants.DaysPerWeek
	default:
		return len(g.Cells)
	}
}

// CellAt returns the hour bucket for a day column in day/week mode, or the
// day cell in month mode (hour is ignored). Returns nil when out of range.
func (g *Grid) CellAt(day, hour int) *Cell {
	var idx int
	switch g.Mode {
	case ViewMonth:
		idx = day
	default:
		if hour < 0 || hour >= constants.HoursPerDay {
			return nil
		}
		idx = day*constants.HoursPerDay + hour
	}
	if idx < 0 || idx >= len(g.Cells) {
		return nil
	}
	return &g.Cells[idx]
}

// EventCount returns the total number of events placed across all cells.
func (g Grid) EventCount() int {
	n := 0
	for i := range g.Cells {
		n += len(g.Cells[i].Events)
	}
	return n
}

// startOfWeek returns the most recent weekStart day at or before d.
func startOfWeek(d time.Time, weekStart time.Weekday) time.Time {
	d = utils.DateOf(d)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// Build produces the bucket grid for the given anchor and view mode. It is a
// pure function: identical inputs always yield an identical grid. The now
// parameter only drives the Today flag and is injectable for tests.
func Build(anchor time.Time, mode ViewMode, weekStart time.Weekday, now time.Time) Grid {
	anchor = utils.DateOf(anchor)
	today := utils.DateOf(now)

	g := Grid{Mode: mode, Anchor: anchor}

	switch mode {
	case ViewWeek:
		start := startOfWeek(anchor, weekStart)
		g.RangeStart = start
		g.RangeEnd = start.AddDate(0, 0, constants.DaysPerWeek-1)
		for d := 0; d < constants.DaysPerWeek; d++ {
			day := start.AddDate(0, 0, d)
			appendHourCells(&g, day, today)
		}

	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		g.RangeStart = startOfWeek(first, weekStart)
		g.RangeEnd = startOfWeek(last, weekStart).AddDate(0, 0, constants.DaysPerWeek-1)
		for day := g.RangeStart; !day.After(g.RangeEnd); day = day.AddDate(0, 0, 1) {
			g.Cells = append(g.Cells, Cell{
				Start:         day,
				End:           day.AddDate(0, 0, 1),
				CurrentPeriod: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
				Today:         utils.SameDate(day, today),
				DisplayCap:    constants.MonthCellEventCap,
			})
		}

	default: // ViewDay
		g.RangeStart = anchor
		g.RangeEnd = anchor
		appendHourCells(&g, anchor, today)
	}

	return g
}

func appendHourCells(g *Grid, day, today time.Time) {
	isToday := utils.SameDate(day, today)
	for h := 0; h < constants.HoursPerDay; h++ {
		// Wall-clock construction instead of Add so a DST-shifted day still
		// yields buckets labeled 00:00 through 23:00.
		start := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), h+1, 0, 0, 0, day.Location())
		g.Cells = append(g.Cells, Cell{
			Start:         start,
			End:           end,
			CurrentPeriod: true,
			Today:         isToday,
		})
	}
}
