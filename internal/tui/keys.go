package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextPeriod key.Binding
	PrevPeriod key.Binding
	Today      key.Binding
	DayView    key.Binding
	WeekView   key.Binding
	MonthView  key.Binding
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Complete   key.Binding
	Cancel     key.Binding
	Delete     key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPeriod: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next period"),
		),
		PrevPeriod: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous period"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		DayView: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "day view"),
		),
		WeekView: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week view"),
		),
		MonthView: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month view"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous event"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next event"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add event"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete event"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cancel event"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete event"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
