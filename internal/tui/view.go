package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fieldagenda/internal/calendar"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAdding:
		return docStyle.Render(m.form.View())
	case StateConfirmDelete:
		return lipgloss.Place(m.width, m.height-4,
			lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				dangerStyle.Render("Delete this event and its participants and reminders?"),
				"",
				"[y] Yes",
				"[n] No",
			),
		)
	}

	grid := m.eng.Grid()

	var content string
	switch grid.Mode {
	case calendar.ViewMonth:
		content = m.viewMonth(&grid)
	default:
		content = m.viewHours(&grid)
	}

	var statusLine string
	switch {
	case m.errMsg != "":
		statusLine = errorStyle.Render(m.errMsg)
	case m.loading:
		statusLine = statusStyle.Render("Loading...")
	case m.statusMsg != "":
		statusLine = statusStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		docStyle.Render(content),
		m.viewEventList(),
		statusLine,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	modes := []struct {
		mode  calendar.ViewMode
		label string
	}{
		{calendar.ViewDay, "Day"},
		{calendar.ViewWeek, "Week"},
		{calendar.ViewMonth, "Month"},
	}
	var tabs []string
	for _, entry := range modes {
		if m.eng.Mode() == entry.mode {
			tabs = append(tabs, activeModeStyle.Render(entry.label))
		} else {
			tabs = append(tabs, inactiveModeStyle.Render(entry.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(m.eng.HeaderLabel()),
		strings.Join(tabs, ""),
	)
}

func (m Model) viewMonth(g *calendar.Grid) string {
	width := 14
	if m.width > 0 && m.width/7-1 < width {
		width = m.width/7 - 1
	}
	if width < 8 {
		width = 8
	}

	var b strings.Builder
	for d := 0; d < 7; d++ {
		b.WriteString(padCell(dimStyle.Render(g.Cells[d].Start.Format("Mon")), 3, width))
	}
	b.WriteString("\n")

	for row := 0; row < len(g.Cells)/7; row++ {
		cells := g.Cells[row*7 : row*7+7]

		lines := 1
		for i := range cells {
			n := len(cells[i].Visible()) + 1
			if cells[i].Overflow() > 0 {
				n++
			}
			if n > lines {
				lines = n
			}
		}

		for line := 0; line < lines; line++ {
			for i := range cells {
				b.WriteString(m.monthCellLine(&cells[i], line, width))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) monthCellLine(cell *calendar.Cell, line, width int) string {
	if line == 0 {
		label := cell.Start.Format("2")
		switch {
		case cell.Today:
			return padCell(todayStyle.Render(label), len(label), width)
		case !cell.CurrentPeriod:
			return padCell(dimStyle.Render(label), len(label), width)
		default:
			return padCell(label, len(label), width)
		}
	}

	visible := cell.Visible()
	idx := line - 1
	if idx < len(visible) {
		ev := visible[idx]
		text := ev.Title
		if len(text) > width-1 {
			text = text[:width-1]
		}
		style := calendar.StyleFor(ev.Type)
		if sel, ok := m.selectedEvent(); ok && sel.ID == ev.ID {
			style = selectedStyle
		}
		return padCell(style.Render(text), len(text), width)
	}
	if idx == len(visible) && cell.Overflow() > 0 {
		text := fmt.Sprintf("+%d more", cell.Overflow())
		return padCell(dimStyle.Render(text), len(text), width)
	}
	return strings.Repeat(" ", width)
}

func (m Model) viewHours(g *calendar.Grid) string {
	var b strings.Builder
	for d := 0; d < g.Days(); d++ {
		day := g.CellAt(d, 0)
		if g.Days() > 1 {
			label := day.Start.Format("Mon Jan 2")
			if day.Today {
				b.WriteString(todayStyle.Render(label))
			} else {
				b.WriteString(dimStyle.Render(label))
			}
			b.WriteString("\n")
		}
		empty := true
		for h := 0; h < 24; h++ {
			cell := g.CellAt(d, h)
			if len(cell.Events) == 0 {
				continue
			}
			empty = false
			b.WriteString(fmt.Sprintf("  %02d:00\n", h))
			for _, ev := range cell.Events {
				line := fmt.Sprintf("%s-%s %s", ev.StartTime, ev.EndTime, ev.Title)
				style := calendar.StyleFor(ev.Type)
				if sel, ok := m.selectedEvent(); ok && sel.ID == ev.ID {
					style = selectedStyle
				}
				b.WriteString("    " + style.Render(line) + "\n")
			}
		}
		if empty {
			b.WriteString(dimStyle.Render("  (no events)") + "\n")
		}
	}
	return b.String()
}

// viewEventList is the selectable flat list under the grid; lifecycle keys
// act on the highlighted row.
func (m Model) viewEventList() string {
	events := m.eng.Events()
	if len(events) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d event(s) in range:", len(events))) + "\n")
	for i, ev := range events {
		prefix := "    "
		line := fmt.Sprintf("%s %s-%s  %-11s %s", ev.Date, ev.StartTime, ev.EndTime, ev.Status, ev.Title)
		if i == m.cursor {
			prefix = "  > "
			b.WriteString(prefix + selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(prefix + calendar.StyleFor(ev.Type).Render(line) + "\n")
		}
	}
	return b.String()
}

// padCell right-pads rendered text to the cell width. The plain length is
// passed separately since the rendered string carries ANSI escapes.
func padCell(rendered string, plainLen, width int) string {
	if n := width - plainLen; n > 0 {
		return rendered + strings.Repeat(" ", n)
	}
	return rendered
}
