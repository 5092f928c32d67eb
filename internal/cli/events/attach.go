package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fieldagenda/internal/cli"
	"fieldagenda/internal/models"
)

type EventParticipantCmd struct {
	EventID string `arg:"" help:"Event id to attach the participant to."`
	Name    string `arg:"" help:"Participant name."`
	Contact string `short:"c" help:"Contact detail (phone or email)."`
}

func (c *EventParticipantCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetEvent(c.EventID); err != nil {
		return err
	}
	p := models.Participant{
		ID:      uuid.New().String(),
		EventID: c.EventID,
		Name:    c.Name,
		Contact: c.Contact,
	}
	if err := ctx.Store.AddParticipant(p); err != nil {
		return err
	}
	fmt.Printf("Added participant %s to event %s\n", p.Name, c.EventID)
	return nil
}

type EventRemindCmd struct {
	EventID string `arg:"" help:"Event id to attach the reminder to."`
	At      string `arg:"" help:"Reminder time (RFC3339, e.g. 2024-03-10T08:00:00Z)."`
	Channel string `short:"c" help:"Delivery channel (e.g. email, sms)."`
}

func (c *EventRemindCmd) Validate() error {
	if _, err := time.Parse(time.RFC3339, c.At); err != nil {
		return fmt.Errorf("invalid reminder time (expected RFC3339): %w", err)
	}
	return nil
}

func (c *EventRemindCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetEvent(c.EventID); err != nil {
		return err
	}
	r := models.Reminder{
		ID:       uuid.New().String(),
		EventID:  c.EventID,
		RemindAt: c.At,
		Channel:  c.Channel,
	}
	if err := ctx.Store.AddReminder(r); err != nil {
		return err
	}
	fmt.Printf("Added reminder at %s to event %s\n", r.RemindAt, c.EventID)
	return nil
}

type EventShowCmd struct {
	ID string `arg:"" help:"Event id to show."`
}

func (c *EventShowCmd) Run(ctx *cli.Context) error {
	ev, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %s)\n", ev.Title, ev.ID)
	fmt.Printf("  Type:     %s\n", ev.Type)
	fmt.Printf("  When:     %s %s-%s\n", ev.Date, ev.StartTime, ev.EndTime)
	fmt.Printf("  Status:   %s\n", ev.Status)
	if ev.Location != "" {
		fmt.Printf("  Location: %s\n", ev.Location)
	}
	if ev.Description != "" {
		fmt.Printf("  Notes:    %s\n", ev.Description)
	}
	if ev.OwnerID != "" {
		fmt.Printf("  Owner:    %s\n", ev.OwnerID)
	}
	if ev.LinkedTicketID != "" {
		fmt.Printf("  Ticket:   %s\n", ev.LinkedTicketID)
	}
	fmt.Printf("  Repeats:  %s\n", cli.FormatRecurrence(ev.Recurrence))

	participants, err := ctx.Store.GetParticipants(ev.ID)
	if err != nil {
		return err
	}
	if len(participants) > 0 {
		fmt.Println("  Participants:")
		for _, p := range participants {
			if p.Contact != "" {
				fmt.Printf("    - %s (%s)\n", p.Name, p.Contact)
			} else {
				fmt.Printf("    - %s\n", p.Name)
			}
		}
	}

	reminders, err := ctx.Store.GetReminders(ev.ID)
	if err != nil {
		return err
	}
	if len(reminders) > 0 {
		fmt.Println("  Reminders:")
		for _, r := range reminders {
			if r.Channel != "" {
				fmt.Printf("    - %s via %s\n", r.RemindAt, r.Channel)
			} else {
				fmt.Printf("    - %s\n", r.RemindAt)
			}
		}
	}
	return nil
}
