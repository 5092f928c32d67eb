package events

import (
	"fmt"

	"fieldagenda/internal/cli"
	"fieldagenda/internal/lifecycle"
	"fieldagenda/internal/models"
	"fieldagenda/internal/utils"
)

type EventAddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Date        string `short:"d" help:"Event date (YYYY-MM-DD)." required:""`
	Start       string `short:"s" help:"Start time (HH:MM)." required:""`
	End         string `short:"e" help:"End time (HH:MM)." required:""`
	Type        string `short:"t" help:"Event type (meeting|field_visit|maintenance|installation|training|other)." default:"other"`
	Location    string `short:"l" help:"Event location."`
	Description string `help:"Event description."`
	Owner       string `short:"o" help:"Professional id the event belongs to."`
	Ticket      string `help:"Support ticket id to link the event to."`
	Recurrence  string `short:"r" help:"Recurrence frequency (daily|weekly|monthly|yearly)."`
	Until       string `help:"Last date the recurrence applies (YYYY-MM-DD)."`
}

func (c *EventAddCmd) Validate() error {
	if _, err := cli.ParseEventType(c.Type); err != nil {
		return err
	}
	if _, err := utils.ParseDate(c.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if _, err := utils.ParseClock(c.Start); err != nil {
		return fmt.Errorf("invalid start time format (expected HH:MM): %w", err)
	}
	if _, err := utils.ParseClock(c.End); err != nil {
		return fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
	}
	if c.Until != "" && c.Recurrence == "" {
		return fmt.Errorf("--until requires --recurrence")
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *cli.Context) error {
	eventType, err := cli.ParseEventType(c.Type)
	if err != nil {
		return err
	}

	draft := models.EventDraft{
		Title:          c.Title,
		Type:           eventType,
		Date:           c.Date,
		StartTime:      c.Start,
		EndTime:        c.End,
		Location:       c.Location,
		Description:    c.Description,
		OwnerID:        c.Owner,
		LinkedTicketID: c.Ticket,
	}
	if c.Recurrence != "" {
		draft.Recurrence = &models.Recurrence{
			Frequency: models.RecurrenceFrequency(c.Recurrence),
			Until:     c.Until,
		}
	}

	ev, err := lifecycle.NewService(ctx.Store).Create(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added event: %s (ID: %s)\n", ev.Title, ev.ID)
	if ev.Recurrence != nil {
		fmt.Printf("  Recurrence: %s\n", cli.FormatRecurrence(ev.Recurrence))
	}
	return nil
}
