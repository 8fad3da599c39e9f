package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/storage"
	"github.com/julianstephens/eyerest/internal/utils"
)

type Context struct {
	Store storage.Provider
	// Location is where office hours are read. Nil means time.Local.
	Location *time.Location
	Timezone string
}

// Loc returns the office-hours location, defaulting to time.Local.
func (c *Context) Loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// FormatSettings renders settings the way the list and status commands print them.
func FormatSettings(s models.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Enabled:       %v\n", s.Enabled())
	fmt.Fprintf(&b, "  Interval:      %s\n", utils.FormatInterval(s.IntervalMinutes()))
	fmt.Fprintf(&b, "  Cue Duration:  %s\n", utils.FormatCueDuration(s.CueDurationSeconds()))
	fmt.Fprintf(&b, "  Accent Color:  %s\n", s.AccentColor())
	if s.RestrictToOfficeHours() {
		fmt.Fprintf(&b, "  Office Hours:  %s - %s\n",
			utils.FormatClock(s.OfficeHoursStartMinutes()),
			utils.FormatClock(s.OfficeHoursEndMinutes()))
	} else {
		fmt.Fprintf(&b, "  Office Hours:  off (%s - %s when on)\n",
			utils.FormatClock(s.OfficeHoursStartMinutes()),
			utils.FormatClock(s.OfficeHoursEndMinutes()))
	}
	return b.String()
}
