package settings

import (
	"fmt"

	"fieldagenda/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WeekStart    *int    `help:"First day of the week (0=Sunday, 1=Monday, ...)."`
	DefaultOwner *string `help:"Professional id new events default to."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Week Start:    %s\n", settings.WeekStartDay())
		fmt.Printf("  Default Owner: %s\n", settings.DefaultOwnerID)
		return nil
	}

	updated := false
	if c.WeekStart != nil {
		if *c.WeekStart < 0 || *c.WeekStart > 6 {
			return fmt.Errorf("week start must be between 0 (Sunday) and 6 (Saturday)")
		}
		settings.WeekStart = *c.WeekStart
		updated = true
	}
	if c.DefaultOwner != nil {
		settings.DefaultOwnerID = *c.DefaultOwner
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
