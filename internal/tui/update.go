package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fieldagenda/internal/calendar"
	"fieldagenda/internal/models"
	"fieldagenda/internal/utils"
)

// eventsFetchedMsg carries a fetch response together with the generation
// token it was started under. The engine drops it when navigation has moved
// on since.
type eventsFetchedMsg struct {
	generation uint64
	events     []models.Event
	err        error
}

// beginFetch stamps a fetch against the current visible range and returns
// the command that performs it off the UI loop.
func (m *Model) beginFetch() tea.Cmd {
	gen, start, end := m.eng.BeginFetch()
	store, filter := m.store, m.eng.Filter()
	return func() tea.Msg {
		events, err := store.GetEventsForRange(filter, start, end)
		return eventsFetchedMsg{generation: gen, events: events, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case eventsFetchedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Failed to load events: %v", msg.err)
			return m, nil
		}
		if m.eng.ApplyFetch(msg.generation, msg.events) {
			m.errMsg = ""
			m.clampCursor()
		}
		return m, nil
	}

	if m.state == StateAdding {
		return m.updateAdding(msg)
	}
	if m.state == StateConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.NextPeriod):
			m.eng.Next()
			m.loading = true
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.PrevPeriod):
			m.eng.Previous()
			m.loading = true
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.Today):
			m.eng.Today()
			m.loading = true
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.DayView):
			m.eng.SetViewMode(calendar.ViewDay)
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.WeekView):
			m.eng.SetViewMode(calendar.ViewWeek)
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.MonthView):
			m.eng.SetViewMode(calendar.ViewMonth)
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			cmds = append(cmds, m.beginFetch())

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.eng.Events())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Add):
			m.openAddForm()
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Complete):
			if ev, ok := m.selectedEvent(); ok {
				if err := m.eng.CompleteEvent(ev.ID); err != nil {
					m.errMsg = fmt.Sprintf("Complete failed: %v", err)
				} else {
					m.statusMsg = fmt.Sprintf("Completed %q", ev.Title)
					m.errMsg = ""
					m.clampCursor()
				}
			}

		case key.Matches(msg, m.keys.Cancel):
			if ev, ok := m.selectedEvent(); ok {
				if err := m.eng.CancelEvent(ev.ID); err != nil {
					m.errMsg = fmt.Sprintf("Cancel failed: %v", err)
				} else {
					m.statusMsg = fmt.Sprintf("Canceled %q", ev.Title)
					m.errMsg = ""
					m.clampCursor()
				}
			}

		case key.Matches(msg, m.keys.Delete):
			if ev, ok := m.selectedEvent(); ok {
				m.eventToDelete = ev.ID
				m.state = StateConfirmDelete
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateCalendar
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		draft := models.EventDraft{
			Title:     m.eventForm.Title,
			Type:      models.EventType(m.eventForm.Type),
			Date:      m.eventForm.Date,
			StartTime: m.eventForm.Start,
			EndTime:   m.eventForm.End,
			Location:  m.eventForm.Location,
			OwnerID:   m.eventForm.Owner,
		}
		if m.eventForm.Recurrence != "" {
			draft.Recurrence = &models.Recurrence{
				Frequency: models.RecurrenceFrequency(m.eventForm.Recurrence),
				Until:     m.eventForm.Until,
			}
		}

		ev, err := m.eng.CreateEvent(draft)
		if err != nil {
			// Stay in the form so the input can be corrected.
			m.errMsg = fmt.Sprintf("Create failed: %v", err)
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.statusMsg = fmt.Sprintf("Added %q on %s", ev.Title, ev.Date)
		m.errMsg = ""
		m.state = StateCalendar
	case huh.StateAborted:
		m.state = StateCalendar
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.eng.DeleteEvent(m.eventToDelete); err != nil {
				m.errMsg = fmt.Sprintf("Delete failed: %v", err)
			} else {
				m.statusMsg = "Event deleted"
				m.errMsg = ""
				m.clampCursor()
			}
			m.eventToDelete = ""
			m.state = StateCalendar
		case "n", "N", "q", "esc":
			m.eventToDelete = ""
			m.state = StateCalendar
		}
	}
	return m, nil
}

func (m *Model) openAddForm() {
	m.eventForm = &EventFormModel{
		Date:  utils.FormatDate(m.eng.Anchor()),
		Start: "09:00",
		End:   "10:00",
		Type:  string(models.EventOther),
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&m.eventForm.Title),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&m.eventForm.Date),
			huh.NewInput().Title("Start (HH:MM)").Value(&m.eventForm.Start),
			huh.NewInput().Title("End (HH:MM)").Value(&m.eventForm.End),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Meeting", string(models.EventMeeting)),
					huh.NewOption("Field visit", string(models.EventFieldVisit)),
					huh.NewOption("Maintenance", string(models.EventMaintenance)),
					huh.NewOption("Installation", string(models.EventInstallation)),
					huh.NewOption("Training", string(models.EventTraining)),
					huh.NewOption("Other", string(models.EventOther)),
				).
				Value(&m.eventForm.Type),
			huh.NewInput().Title("Location").Value(&m.eventForm.Location),
			huh.NewInput().Title("Professional id").Value(&m.eventForm.Owner),
			huh.NewSelect[string]().
				Title("Recurrence").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Monthly", string(models.FrequencyMonthly)),
					huh.NewOption("Yearly", string(models.FrequencyYearly)),
				).
				Value(&m.eventForm.Recurrence),
			huh.NewInput().Title("Repeat until (YYYY-MM-DD, optional)").Value(&m.eventForm.Until),
		),
	)
	m.state = StateAdding
}

func (m *Model) selectedEvent() (models.Event, bool) {
	events := m.eng.Events()
	if len(events) == 0 || m.cursor < 0 || m.cursor >= len(events) {
		return models.Event{}, false
	}
	return events[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.eng.Events()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
