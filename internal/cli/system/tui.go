package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fieldagenda/internal/cli"
	"fieldagenda/internal/tui"
)

type TuiCmd struct {
	Owner string `short:"o" help:"Only show events for this professional."`
	Team  string `help:"Comma-separated professional ids to show events for."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	model, err := tui.NewModel(ctx.Store, cli.OwnerFilter(c.Owner, c.Team))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
