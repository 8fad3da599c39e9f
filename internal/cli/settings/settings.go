package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/utils"
	"github.com/julianstephens/eyerest/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Enabled     *bool    `help:"Enable or disable reminders."`
	Interval    *float64 `help:"Minutes between reminders (1-240)."`
	CueDuration *float64 `help:"Seconds the cue stays on screen (1-30)."`
	Accent      *string  `help:"Accent color of the cue (red, orange, yellow, green, blue, pink)."`
	OfficeHours *bool    `help:"Only remind during office hours."`
	OfficeStart *string  `help:"Office hours start (HH:MM)."`
	OfficeEnd   *string  `help:"Office hours end (HH:MM). Equal to start means all day."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	current, err := ctx.Store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Print(cli.FormatSettings(current))
		return nil
	}

	raw, updated, err := c.apply(current.Raw())
	if err != nil {
		return err
	}
	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	next := models.NewSettings(raw)
	for _, n := range validation.ClampNotices(raw, next) {
		fmt.Printf("⚠ %s\n", n.Description)
	}

	if err := ctx.Store.SaveSettings(next); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

// apply copies every flag that was set onto raw.
func (c *SettingsCmd) apply(raw models.RawSettings) (models.RawSettings, bool, error) {
	updated := false

	if c.Enabled != nil {
		raw.Enabled = *c.Enabled
		updated = true
	}
	if c.Interval != nil {
		raw.IntervalMinutes = *c.Interval
		updated = true
	}
	if c.CueDuration != nil {
		raw.CueDurationSeconds = *c.CueDuration
		updated = true
	}
	if c.Accent != nil {
		accent, ok := models.ParseAccentColor(strings.ToLower(strings.TrimSpace(*c.Accent)))
		if !ok {
			return raw, false, fmt.Errorf("unknown accent color %q", *c.Accent)
		}
		raw.AccentColor = accent
		updated = true
	}
	if c.OfficeHours != nil {
		raw.RestrictToOfficeHours = *c.OfficeHours
		updated = true
	}
	if c.OfficeStart != nil {
		minutes, err := utils.ParseClock(*c.OfficeStart)
		if err != nil {
			return raw, false, fmt.Errorf("office hours start: %w", err)
		}
		raw.OfficeHoursStartMinutes = float64(minutes)
		updated = true
	}
	if c.OfficeEnd != nil {
		minutes, err := utils.ParseClock(*c.OfficeEnd)
		if err != nil {
			return raw, false, fmt.Errorf("office hours end: %w", err)
		}
		raw.OfficeHoursEndMinutes = float64(minutes)
		updated = true
	}

	return raw, updated, nil
}
