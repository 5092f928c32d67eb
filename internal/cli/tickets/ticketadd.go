package tickets

import (
	"fmt"

	"github.com/google/uuid"

	"fieldagenda/internal/cli"
	"fieldagenda/internal/models"
)

type TicketAddCmd struct {
	Client   string `arg:"" help:"Client name."`
	Motive   string `short:"m" help:"Reason the ticket was opened." required:""`
	Location string `short:"l" help:"Site location."`
}

func (c *TicketAddCmd) Run(ctx *cli.Context) error {
	ticket := models.Ticket{
		ID:         uuid.New().String(),
		ClientName: c.Client,
		Motive:     c.Motive,
		Location:   c.Location,
	}
	if err := ctx.Store.AddTicket(ticket); err != nil {
		return err
	}
	fmt.Printf("Added ticket for %s (ID: %s)\n", ticket.ClientName, ticket.ID)
	return nil
}
