package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fieldagenda/internal/calendar"
	"fieldagenda/internal/engine"
	"fieldagenda/internal/utils"
)

type AgendaCmd struct {
	Date  string `short:"d" help:"Anchor date (YYYY-MM-DD). Defaults to today."`
	View  string `short:"v" help:"View mode (day|week|month)." default:"month"`
	Owner string `short:"o" help:"Only show events for this professional."`
	Team  string `help:"Comma-separated professional ids to show events for."`
}

var (
	agendaHeaderStyle  = lipgloss.NewStyle().Bold(true)
	agendaDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	agendaTodayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	agendaWeekdayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
)

func (c *AgendaCmd) Validate() error {
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	_, err := ParseViewMode(c.View)
	return err
}

func (c *AgendaCmd) Run(ctx *Context) error {
	mode, err := ParseViewMode(c.View)
	if err != nil {
		return err
	}

	eng, err := engine.New(ctx.Store, OwnerFilter(c.Owner, c.Team), nil)
	if err != nil {
		return err
	}
	eng.SetViewMode(mode)
	if c.Date != "" {
		anchor, err := utils.ParseDate(c.Date)
		if err != nil {
			return err
		}
		eng.SetAnchor(anchor)
	}
	if err := eng.Reload(); err != nil {
		return err
	}

	grid := eng.Grid()
	fmt.Println(agendaHeaderStyle.Render(eng.HeaderLabel()))
	switch grid.Mode {
	case calendar.ViewMonth:
		printMonth(&grid)
	default:
		printHourGrid(&grid)
	}
	return nil
}

func printMonth(g *calendar.Grid) {
	const cellWidth = 18

	var names []string
	for d := 0; d < 7; d++ {
		names = append(names, g.Cells[d].Start.Format("Mon"))
	}
	fmt.Println(agendaWeekdayStyle.Render(strings.Join(padAll(names, cellWidth), "")))

	for row := 0; row < len(g.Cells)/7; row++ {
		// Tallest cell in the row sets the line count for the whole row.
		lines := 1
		cells := g.Cells[row*7 : row*7+7]
		for i := range cells {
			if n := len(cells[i].Visible()) + 1 + overflowLine(&cells[i]); n > lines {
				lines = n
			}
		}

		for line := 0; line < lines; line++ {
			var cols []string
			for i := range cells {
				cols = append(cols, monthCellLine(&cells[i], line, cellWidth))
			}
			fmt.Println(strings.Join(cols, ""))
		}
	}
}

func monthCellLine(cell *calendar.Cell, line, width int) string {
	if line == 0 {
		label := cell.Start.Format("2")
		switch {
		case cell.Today:
			return pad(agendaTodayStyle.Render(label), label, width)
		case !cell.CurrentPeriod:
			return pad(agendaDimStyle.Render(label), label, width)
		default:
			return pad(label, label, width)
		}
	}

	visible := cell.Visible()
	idx := line - 1
	if idx < len(visible) {
		ev := visible[idx]
		text := fmt.Sprintf("%s %s", ev.StartTime, ev.Title)
		if len(text) > width-2 {
			text = text[:width-2]
		}
		return pad(calendar.StyleFor(ev.Type).Render(text), text, width)
	}
	if idx == len(visible) && cell.Overflow() > 0 {
		text := fmt.Sprintf("+%d more", cell.Overflow())
		return pad(agendaDimStyle.Render(text), text, width)
	}
	return strings.Repeat(" ", width)
}

func printHourGrid(g *calendar.Grid) {
	days := g.Days()
	for d := 0; d < days; d++ {
		day := g.CellAt(d, 0).Start
		if days > 1 {
			label := day.Format("Mon Jan 2")
			if utils.SameDate(day, time.Now()) {
				label = agendaTodayStyle.Render(label)
			} else {
				label = agendaWeekdayStyle.Render(label)
			}
			fmt.Println(label)
		}
		for h := 0; h < 24; h++ {
			cell := g.CellAt(d, h)
			if len(cell.Events) == 0 {
				continue
			}
			fmt.Printf("  %02d:00\n", h)
			for _, ev := range cell.Events {
				line := fmt.Sprintf("%s-%s %s", ev.StartTime, ev.EndTime, ev.Title)
				if ev.Location != "" {
					line += fmt.Sprintf(" @ %s", ev.Location)
				}
				fmt.Printf("    %s\n", calendar.StyleFor(ev.Type).Render(line))
			}
		}
	}
	if g.EventCount() == 0 {
		fmt.Println(agendaDimStyle.Render("  No events in this range."))
	}
}

func overflowLine(cell *calendar.Cell) int {
	if cell.Overflow() > 0 {
		return 1
	}
	return 0
}

// pad right-pads a styled string to width using the unstyled text for the
// width calculation, since ANSI escapes have no printable width.
func pad(styled, plain string, width int) string {
	if n := width - len(plain); n > 0 {
		return styled + strings.Repeat(" ", n)
	}
	return styled
}

func padAll(texts []string, width int) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = pad(t, t, width)
	}
	return out
}
