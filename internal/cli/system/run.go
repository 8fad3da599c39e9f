package system

import (
	"fmt"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/reminder"
	"github.com/julianstephens/eyerest/internal/tui"
)

type RunCmd struct{}

func (c *RunCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return tui.Run(ctx.Store, settings, reminder.WithLocation(ctx.Loc()))
}
