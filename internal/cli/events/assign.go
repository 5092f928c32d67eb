package events

import (
	"fmt"

	"fieldagenda/internal/cli"
	"fieldagenda/internal/lifecycle"
	"fieldagenda/internal/utils"
)

type EventAssignCmd struct {
	Ticket       string `arg:"" help:"Support ticket id to schedule."`
	Professional string `short:"p" help:"Professional id to assign the visit to." required:""`
	Date         string `short:"d" help:"Visit date (YYYY-MM-DD)." required:""`
	Start        string `short:"s" help:"Start time (HH:MM)." required:""`
	End          string `short:"e" help:"End time (HH:MM)." required:""`
}

func (c *EventAssignCmd) Validate() error {
	if _, err := utils.ParseDate(c.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if _, err := utils.ParseClock(c.Start); err != nil {
		return fmt.Errorf("invalid start time format (expected HH:MM): %w", err)
	}
	if _, err := utils.ParseClock(c.End); err != nil {
		return fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
	}
	return nil
}

func (c *EventAssignCmd) Run(ctx *cli.Context) error {
	ev, err := lifecycle.NewService(ctx.Store).AssignTicket(c.Ticket, c.Professional, c.Date, c.Start, c.End)
	if err != nil {
		return err
	}
	fmt.Printf("Scheduled ticket %s: %s on %s %s-%s (event ID: %s)\n", c.Ticket, ev.Title, ev.Date, ev.StartTime, ev.EndTime, ev.ID)
	return nil
}
