package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fieldagenda/internal/engine"
	"fieldagenda/internal/storage"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateAdding
	StateConfirmDelete
)

// EventFormModel backs the huh form for creating an event. All fields are
// strings; validation happens in the lifecycle service on submit.
type EventFormModel struct {
	Title      string
	Date       string
	Start      string
	End        string
	Type       string
	Location   string
	Owner      string
	Recurrence string
	Until      string
}

type Model struct {
	store storage.Provider
	eng   *engine.Engine

	state     SessionState
	keys      KeyMap
	help      help.Model
	form      *huh.Form
	eventForm *EventFormModel

	// cursor indexes into the engine's event snapshot.
	cursor        int
	eventToDelete string

	statusMsg string
	errMsg    string
	loading   bool
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, filter storage.EventFilter) (Model, error) {
	eng, err := engine.New(store, filter, nil)
	if err != nil {
		return Model{}, err
	}
	return Model{
		store: store,
		eng:   eng,
		state: StateCalendar,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}, nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextPeriod, m.keys.PrevPeriod, m.keys.Today,
		m.keys.Add, m.keys.Help, m.keys.Quit,
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextPeriod, m.keys.PrevPeriod, m.keys.Today, m.keys.Refresh},
		{m.keys.DayView, m.keys.WeekView, m.keys.MonthView},
		{m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Complete, m.keys.Cancel, m.keys.Delete},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return m.beginFetch()
}
