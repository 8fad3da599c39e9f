package system

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/models"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	writeStatus(os.Stdout, settings, time.Now(), ctx.Loc())
	return nil
}

func writeStatus(w io.Writer, s models.Settings, now time.Time, loc *time.Location) {
	fmt.Fprintln(w, "Settings:")
	fmt.Fprint(w, cli.FormatSettings(s))
	fmt.Fprintln(w)

	local := now.In(loc)
	fmt.Fprintf(w, "Now:              %s (%s)\n", local.Format(constants.TimeFormat), loc)

	switch {
	case !s.Enabled():
		fmt.Fprintln(w, "Reminder allowed: no (reminders disabled)")
	case s.IsReminderAllowed(now, loc):
		fmt.Fprintln(w, "Reminder allowed: yes")
	default:
		fmt.Fprintln(w, "Reminder allowed: no (outside office hours)")
	}

	if next, ok := s.NextOfficeHoursStart(now, loc); ok {
		fmt.Fprintf(w, "Office hours open: %s\n", next.Format("Mon "+constants.TimeFormat))
	}
}
