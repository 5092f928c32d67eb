package events

import (
	"fmt"

	"fieldagenda/internal/cli"
	"fieldagenda/internal/lifecycle"
	"fieldagenda/internal/models"
)

type EventCompleteCmd struct {
	ID string `arg:"" help:"Event id to mark completed."`
}

func (c *EventCompleteCmd) Run(ctx *cli.Context) error {
	if err := lifecycle.NewService(ctx.Store).UpdateStatus(c.ID, models.StatusCompleted); err != nil {
		return err
	}
	fmt.Printf("Marked event %s completed.\n", c.ID)
	return nil
}

type EventCancelCmd struct {
	ID string `arg:"" help:"Event id to cancel."`
}

func (c *EventCancelCmd) Run(ctx *cli.Context) error {
	if err := lifecycle.NewService(ctx.Store).UpdateStatus(c.ID, models.StatusCanceled); err != nil {
		return err
	}
	fmt.Printf("Canceled event %s.\n", c.ID)
	return nil
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event id to delete."`
}

func (c *EventDeleteCmd) Run(ctx *cli.Context) error {
	if err := lifecycle.NewService(ctx.Store).Delete(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted event %s and its participants and reminders.\n", c.ID)
	return nil
}
