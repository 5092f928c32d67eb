package events

import (
	"fmt"
	"time"

	"fieldagenda/internal/calendar"
	"fieldagenda/internal/cli"
	"fieldagenda/internal/utils"
)

type EventListCmd struct {
	From  string `help:"Start of the range (YYYY-MM-DD). Defaults to the first of the current month."`
	To    string `help:"End of the range (YYYY-MM-DD), inclusive. Defaults to the last of the current month."`
	Owner string `short:"o" help:"Only list events for this professional."`
	Team  string `help:"Comma-separated professional ids to list events for."`
}

func (c *EventListCmd) Validate() error {
	if c.From != "" {
		if _, err := utils.ParseDate(c.From); err != nil {
			return fmt.Errorf("invalid --from date (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.To != "" {
		if _, err := utils.ParseDate(c.To); err != nil {
			return fmt.Errorf("invalid --to date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (c *EventListCmd) Run(ctx *cli.Context) error {
	from, to := c.From, c.To
	if from == "" || to == "" {
		now := time.Now()
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		if from == "" {
			from = utils.FormatDate(first)
		}
		if to == "" {
			to = utils.FormatDate(first.AddDate(0, 1, -1))
		}
	}

	events, err := ctx.Store.GetEventsForRange(cli.OwnerFilter(c.Owner, c.Team), from, to)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Printf("No events between %s and %s.\n", from, to)
		return nil
	}

	fmt.Printf("Events from %s to %s:\n", from, to)
	for _, ev := range events {
		marker := calendar.StyleFor(ev.Type).Render("●")
		line := fmt.Sprintf("%s %s-%s  %-11s %s", ev.Date, ev.StartTime, ev.EndTime, ev.Status, ev.Title)
		if ev.Location != "" {
			line += fmt.Sprintf(" @ %s", ev.Location)
		}
		fmt.Printf("  %s %s (ID: %s)\n", marker, line, ev.ID)
	}
	return nil
}
