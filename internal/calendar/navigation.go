package calendar

import (
	"fmt"
	"time"

	"fieldagenda/internal/utils"
)

// Navigator owns the navigation cursor: an anchor date plus a view mode.
// Every query is derivable from those two fields; mutations touch nothing
// else.
type Navigator struct {
	anchor    time.Time
	mode      ViewMode
	weekStart time.Weekday
	now       func() time.Time
}

// NewNavigator creates a navigation cursor. The now function is injectable
// for tests; pass nil to use time.Now.
func NewNavigator(anchor time.Time, mode ViewMode, weekStart time.Weekday, now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{
		anchor:    utils.DateOf(anchor),
		mode:      mode,
		weekStart: weekStart,
		now:       now,
	}
}

func (n *Navigator) Anchor() time.Time      { return n.anchor }
func (n *Navigator) Mode() ViewMode         { return n.mode }
func (n *Navigator) WeekStart() time.Weekday { return n.weekStart }

// Advance shifts the anchor by one period in the given direction (+1 or -1):
// a day in day mode, seven days in week mode, one calendar month in month
// mode. Month shifts clamp the day-of-month, so Jan 31 forward lands on the
// last day of February rather than spilling into March.
func (n *Navigator) Advance(direction int) {
	if direction > 0 {
		direction = 1
	} else {
		direction = -1
	}
	switch n.mode {
	case ViewWeek:
		n.anchor = n.anchor.AddDate(0, 0, 7*direction)
	case ViewMonth:
		n.anchor = addMonthsClamped(n.anchor, direction)
	default:
		n.anchor = n.anchor.AddDate(0, 0, direction)
	}
}

// Today resets the anchor to the current date, preserving the view mode.
func (n *Navigator) Today() {
	n.anchor = utils.DateOf(n.now())
}

// SetViewMode changes the granularity in place; the anchor is unchanged so
// the visible range recomputes around the same date.
func (n *Navigator) SetViewMode(mode ViewMode) {
	n.mode = mode
}

// SetAnchor moves the cursor to an explicit date, preserving the view mode.
func (n *Navigator) SetAnchor(d time.Time) {
	n.anchor = utils.DateOf(d)
}

// Grid builds the bucket grid for the current cursor position.
func (n *Navigator) Grid() Grid {
	return Build(n.anchor, n.mode, n.weekStart, n.now())
}

// VisibleRange returns the first and last visible days, inclusive. In month
// mode this includes the out-of-month days padding the grid to whole weeks,
// since those cells are event-eligible.
func (n *Navigator) VisibleRange() (time.Time, time.Time) {
	g := Build(n.anchor, n.mode, n.weekStart, n.now())
	return g.RangeStart, g.RangeEnd
}

// HeaderLabel renders the display header for the current cursor position.
func (n *Navigator) HeaderLabel() string {
	switch n.mode {
	case ViewWeek:
		start := startOfWeek(n.anchor, n.weekStart)
		end := start.AddDate(0, 0, 6)
		if start.Year() != end.Year() {
			return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
		}
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	case ViewMonth:
		return n.anchor.Format("January 2006")
	default:
		return n.anchor.Format("Monday, January 2, 2006")
	}
}

// addMonthsClamped adds n calendar months, clamping the day-of-month to the
// target month's length instead of letting normalization roll into the next
// month.
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
