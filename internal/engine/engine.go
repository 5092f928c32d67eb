package engine

import (
	"fmt"
	"time"

	"fieldagenda/internal/calendar"
	"fieldagenda/internal/lifecycle"
	"fieldagenda/internal/logger"
	"fieldagenda/internal/models"
	"fieldagenda/internal/storage"
	"fieldagenda/internal/utils"
)

// Selection is the domain result of a grid click. When Event is non-nil the
// click landed on a rendered event; otherwise it landed on an empty slot at
// Date (and Hour, in the hour-bucketed views). The host owns what happens
// next.
type Selection struct {
	Event     *models.Event
	Date      time.Time
	Hour      int
	HourValid bool
}

// Engine is the composition root of the calendar: a navigation cursor, the
// event snapshot last fetched for the visible range, and the lifecycle
// service for mutations. It is single-goroutine by design; the host drives
// it from its UI loop.
type Engine struct {
	store     storage.Provider
	lifecycle *lifecycle.Service
	nav       *calendar.Navigator
	filter    storage.EventFilter

	events []models.Event

	// generation invalidates in-flight fetches. Navigation and reloads bump
	// it, so a response started for an older visible range is dropped
	// instead of overwriting newer state.
	generation uint64
}

// New builds an engine anchored on today. Week start comes from stored
// settings; the now function is injectable for tests and may be nil.
func New(store storage.Provider, filter storage.EventFilter, now func() time.Time) (*Engine, error) {
	if now == nil {
		now = time.Now
	}
	settings, err := store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return &Engine{
		store:     store,
		lifecycle: lifecycle.NewService(store),
		nav:       calendar.NewNavigator(now(), calendar.ViewMonth, settings.WeekStartDay(), now),
		filter:    filter,
	}, nil
}

// Grid returns the visible grid with the current event snapshot bound into
// its cells.
func (e *Engine) Grid() calendar.Grid {
	return calendar.Bind(e.nav.Grid(), e.events)
}

func (e *Engine) HeaderLabel() string      { return e.nav.HeaderLabel() }
func (e *Engine) Mode() calendar.ViewMode  { return e.nav.Mode() }
func (e *Engine) Anchor() time.Time        { return e.nav.Anchor() }
func (e *Engine) Events() []models.Event   { return e.events }
func (e *Engine) Filter() storage.EventFilter { return e.filter }

// VisibleRange returns the fetch window for the current cursor position as
// storage date strings, inclusive on both ends.
func (e *Engine) VisibleRange() (string, string) {
	start, end := e.nav.VisibleRange()
	return utils.FormatDate(start), utils.FormatDate(end)
}

// Next, Previous, Today, SetViewMode and SetAnchor move the cursor. Each
// invalidates any fetch still in flight for the old range.
func (e *Engine) Next() {
	e.nav.Advance(1)
	e.generation++
}

func (e *Engine) Previous() {
	e.nav.Advance(-1)
	e.generation++
}

func (e *Engine) Today() {
	e.nav.Today()
	e.generation++
}

func (e *Engine) SetViewMode(mode calendar.ViewMode) {
	e.nav.SetViewMode(mode)
	e.generation++
}

func (e *Engine) SetAnchor(d time.Time) {
	e.nav.SetAnchor(d)
	e.generation++
}

// BeginFetch stamps an asynchronous fetch: it returns the token to hand
// back to ApplyFetch together with the date range to query. Starting a new
// fetch supersedes any earlier one.
func (e *Engine) BeginFetch() (uint64, string, string) {
	e.generation++
	start, end := e.VisibleRange()
	return e.generation, start, end
}

// ApplyFetch installs a fetch response. It reports whether the response was
// current; stale responses are dropped without touching the snapshot.
func (e *Engine) ApplyFetch(generation uint64, events []models.Event) bool {
	if generation != e.generation {
		logger.Debug("Dropped stale fetch", "generation", generation, "current", e.generation)
		return false
	}
	e.events = events
	return true
}

// Reload fetches the visible range synchronously. On failure the snapshot
// is left as it was.
func (e *Engine) Reload() error {
	gen, start, end := e.BeginFetch()
	events, err := e.store.GetEventsForRange(e.filter, start, end)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}
	e.ApplyFetch(gen, events)
	return nil
}

// CreateEvent validates and persists a draft, then refetches the visible
// range. A rejected or failed create leaves the grid untouched.
func (e *Engine) CreateEvent(draft models.EventDraft) (models.Event, error) {
	ev, err := e.lifecycle.Create(draft)
	if err != nil {
		return models.Event{}, err
	}
	return ev, e.Reload()
}

// CompleteEvent marks an event completed and refetches.
func (e *Engine) CompleteEvent(id string) error {
	if err := e.lifecycle.UpdateStatus(id, models.StatusCompleted); err != nil {
		return err
	}
	return e.Reload()
}

// CancelEvent marks an event canceled and refetches.
func (e *Engine) CancelEvent(id string) error {
	if err := e.lifecycle.UpdateStatus(id, models.StatusCanceled); err != nil {
		return err
	}
	return e.Reload()
}

// DeleteEvent removes an event with its participants and reminders, then
// refetches.
func (e *Engine) DeleteEvent(id string) error {
	if err := e.lifecycle.Delete(id); err != nil {
		return err
	}
	return e.Reload()
}

// AssignTicket schedules a ticket as a new event and refetches.
func (e *Engine) AssignTicket(ticketID, professionalID, date, startTime, endTime string) (models.Event, error) {
	ev, err := e.lifecycle.AssignTicket(ticketID, professionalID, date, startTime, endTime)
	if err != nil {
		return models.Event{}, err
	}
	return ev, e.Reload()
}

// ResolveClick maps a cell position and an index into that cell's event
// list to a domain result. An index past the cell's events (or negative)
// resolves to the empty slot instead. The second return is false when the
// position is outside the grid.
func (e *Engine) ResolveClick(day, hour, eventIndex int) (Selection, bool) {
	grid := e.Grid()
	cell := grid.CellAt(day, hour)
	if cell == nil {
		return Selection{}, false
	}

	sel := Selection{Date: utils.DateOf(cell.Start)}
	if grid.Mode != calendar.ViewMonth {
		sel.Hour = hour
		sel.HourValid = true
	}
	if eventIndex >= 0 && eventIndex < len(cell.Events) {
		ev := cell.Events[eventIndex]
		sel.Event = &ev
	}
	return sel, true
}
