package system

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/models"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show storage path."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump stored settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return printJSON(newSettingsDump(settings, time.Now(), ctx.Loc()))
}

// settingsDump is the stored key/value form plus what it means right now.
type settingsDump struct {
	Stored               map[string]string `json:"stored"`
	IntervalSeconds      float64           `json:"interval_seconds"`
	ReminderAllowed      bool              `json:"reminder_allowed"`
	NextOfficeHoursStart *time.Time        `json:"next_office_hours_start,omitempty"`
	Timezone             string            `json:"timezone"`
}

func newSettingsDump(s models.Settings, now time.Time, loc *time.Location) settingsDump {
	d := settingsDump{
		Stored:          models.SettingsToMap(s),
		IntervalSeconds: s.IntervalSeconds(),
		ReminderAllowed: s.Enabled() && s.IsReminderAllowed(now, loc),
		Timezone:        loc.String(),
	}
	if next, ok := s.NextOfficeHoursStart(now, loc); ok {
		d.NextOfficeHoursStart = &next
	}
	return d
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
