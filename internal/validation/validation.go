// Package validation explains how eyerest adjusted or interprets settings.
// Nothing here rejects input: settings are clamped, and these notices tell
// the user what changed.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/utils"
)

// NoticeType identifies what a notice is about
type NoticeType string

const (
	NoticeIntervalClamped     NoticeType = "interval_clamped"
	NoticeCueDurationClamped  NoticeType = "cue_duration_clamped"
	NoticeOfficeHoursAdjusted NoticeType = "office_hours_adjusted"
	NoticeUnknownAccent       NoticeType = "unknown_accent"
	NoticeAlwaysOnWindow      NoticeType = "always_on_window"
	NoticeOvernightWindow     NoticeType = "overnight_window"
	NoticeRemindersDisabled   NoticeType = "reminders_disabled"
)

// Notice describes one adjustment or noteworthy interpretation.
type Notice struct {
	Type        NoticeType
	Field       string
	Description string
}

// Result collects notices in the order they were found.
type Result struct {
	Notices []Notice
}

// HasNotices returns true if there is anything to report
func (r *Result) HasNotices() bool {
	return len(r.Notices) > 0
}

// FormatReport returns a human-readable report of all notices
func (r *Result) FormatReport() string {
	if !r.HasNotices() {
		return "Settings look good."
	}
	var b strings.Builder
	for _, n := range r.Notices {
		fmt.Fprintf(&b, "- %s\n", n.Description)
	}
	return b.String()
}

func (r *Result) add(t NoticeType, field, format string, args ...any) {
	r.Notices = append(r.Notices, Notice{Type: t, Field: field, Description: fmt.Sprintf(format, args...)})
}

// ClampNotices compares what the user asked for with the normalized settings
// built from it and reports every field that was corrected.
func ClampNotices(raw models.RawSettings, s models.Settings) []Notice {
	var r Result

	if !sameFloat(raw.IntervalMinutes, s.IntervalMinutes()) {
		r.add(NoticeIntervalClamped, "interval",
			"Interval %v min is out of range; using %s.", raw.IntervalMinutes, utils.FormatInterval(s.IntervalMinutes()))
	}
	if !sameFloat(raw.CueDurationSeconds, s.CueDurationSeconds()) {
		r.add(NoticeCueDurationClamped, "cue-duration",
			"Cue duration %v s is out of range; using %s.", raw.CueDurationSeconds, utils.FormatCueDuration(s.CueDurationSeconds()))
	}
	if !sameFloat(raw.OfficeHoursStartMinutes, float64(s.OfficeHoursStartMinutes())) {
		r.add(NoticeOfficeHoursAdjusted, "office-start",
			"Office hours start adjusted to %s.", utils.FormatClock(s.OfficeHoursStartMinutes()))
	}
	if !sameFloat(raw.OfficeHoursEndMinutes, float64(s.OfficeHoursEndMinutes())) {
		r.add(NoticeOfficeHoursAdjusted, "office-end",
			"Office hours end adjusted to %s.", utils.FormatClock(s.OfficeHoursEndMinutes()))
	}

	return r.Notices
}

// CheckSettings reports how settings will behave in ways users tend to miss.
func CheckSettings(s models.Settings) Result {
	var r Result

	if !s.Enabled() {
		r.add(NoticeRemindersDisabled, "enabled", "Reminders are disabled.")
	}
	if _, ok := models.ParseAccentColor(string(s.AccentColor())); !ok {
		r.add(NoticeUnknownAccent, "accent",
			"Accent color %q is not one of %s; the cue falls back to red.", s.AccentColor(), accentList())
	}
	if s.RestrictToOfficeHours() {
		start, end := s.OfficeHoursStartMinutes(), s.OfficeHoursEndMinutes()
		switch {
		case start == end:
			r.add(NoticeAlwaysOnWindow, "office-hours",
				"Office hours start and end at %s, so reminders run around the clock.", utils.FormatClock(start))
		case start > end:
			r.add(NoticeOvernightWindow, "office-hours",
				"Office hours run overnight, %s until %s the next day.", utils.FormatClock(start), utils.FormatClock(end))
		}
	}

	return r
}

func accentList() string {
	colors := models.AccentColors()
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func sameFloat(requested, applied float64) bool {
	if math.IsNaN(requested) {
		return false
	}
	return requested == applied
}
