package models

import (
	"math"
	"time"

	"github.com/julianstephens/eyerest/internal/constants"
)

// AccentColor is the highlight color of the rest cue.
type AccentColor string

const (
	AccentRed    AccentColor = "red"
	AccentOrange AccentColor = "orange"
	AccentYellow AccentColor = "yellow"
	AccentGreen  AccentColor = "green"
	AccentBlue   AccentColor = "blue"
	AccentPink   AccentColor = "pink"
)

// AccentColors returns every supported accent color in display order.
func AccentColors() []AccentColor {
	return []AccentColor{AccentRed, AccentOrange, AccentYellow, AccentGreen, AccentBlue, AccentPink}
}

// ParseAccentColor returns the accent color named s, if it is one of the supported values.
func ParseAccentColor(s string) (AccentColor, bool) {
	for _, c := range AccentColors() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// RawSettings holds reminder configuration exactly as the caller supplied it,
// before clamping and rounding.
type RawSettings struct {
	Enabled                 bool
	IntervalMinutes         float64
	CueDurationSeconds      float64
	AccentColor             AccentColor
	RestrictToOfficeHours   bool
	OfficeHoursStartMinutes float64
	OfficeHoursEndMinutes   float64
}

// Settings is the normalized reminder configuration. Values are immutable once
// constructed; a change produces a new Settings through NewSettings or With.
//
// The zero Settings is not normalized. Use NewSettings or DefaultSettings.
type Settings struct {
	enabled                 bool
	intervalMinutes         float64
	cueDurationSeconds      float64
	accentColor             AccentColor
	restrictToOfficeHours   bool
	officeHoursStartMinutes int
	officeHoursEndMinutes   int
}

// NewSettings clamps every numeric field of raw into its documented range and
// rounds the office hours to whole minutes. It never fails.
func NewSettings(raw RawSettings) Settings {
	return Settings{
		enabled:                 raw.Enabled,
		intervalMinutes:         clamp(raw.IntervalMinutes, constants.MinIntervalMinutes, constants.MaxIntervalMinutes),
		cueDurationSeconds:      clamp(raw.CueDurationSeconds, constants.MinCueDurationSeconds, constants.MaxCueDurationSeconds),
		accentColor:             raw.AccentColor,
		restrictToOfficeHours:   raw.RestrictToOfficeHours,
		officeHoursStartMinutes: clampMinuteOfDay(raw.OfficeHoursStartMinutes),
		officeHoursEndMinutes:   clampMinuteOfDay(raw.OfficeHoursEndMinutes),
	}
}

// DefaultSettings returns the settings used when nothing has been stored yet.
func DefaultSettings() Settings {
	return NewSettings(RawSettings{
		Enabled:                 constants.DefaultEnabled,
		IntervalMinutes:         constants.DefaultIntervalMinutes,
		CueDurationSeconds:      constants.DefaultCueDurationSeconds,
		AccentColor:             AccentColor(constants.DefaultAccentColor),
		RestrictToOfficeHours:   constants.DefaultRestrictToOfficeHours,
		OfficeHoursStartMinutes: constants.DefaultOfficeHoursStartMinutes,
		OfficeHoursEndMinutes:   constants.DefaultOfficeHoursEndMinutes,
	})
}

// Raw returns the settings as editable raw values.
func (s Settings) Raw() RawSettings {
	return RawSettings{
		Enabled:                 s.enabled,
		IntervalMinutes:         s.intervalMinutes,
		CueDurationSeconds:      s.cueDurationSeconds,
		AccentColor:             s.accentColor,
		RestrictToOfficeHours:   s.restrictToOfficeHours,
		OfficeHoursStartMinutes: float64(s.officeHoursStartMinutes),
		OfficeHoursEndMinutes:   float64(s.officeHoursEndMinutes),
	}
}

// With returns a new normalized Settings with edit applied to a copy of the raw values.
func (s Settings) With(edit func(*RawSettings)) Settings {
	raw := s.Raw()
	edit(&raw)
	return NewSettings(raw)
}

// Normalized re-applies clamping. It is a no-op on an already normalized value.
func (s Settings) Normalized() Settings {
	return NewSettings(s.Raw())
}

func (s Settings) Enabled() bool                { return s.enabled }
func (s Settings) IntervalMinutes() float64     { return s.intervalMinutes }
func (s Settings) CueDurationSeconds() float64  { return s.cueDurationSeconds }
func (s Settings) AccentColor() AccentColor     { return s.accentColor }
func (s Settings) RestrictToOfficeHours() bool  { return s.restrictToOfficeHours }
func (s Settings) OfficeHoursStartMinutes() int { return s.officeHoursStartMinutes }
func (s Settings) OfficeHoursEndMinutes() int   { return s.officeHoursEndMinutes }

// IntervalSeconds is the reminder period in seconds.
func (s Settings) IntervalSeconds() float64 {
	return s.intervalMinutes * 60
}

// Interval is the reminder period as a time.Duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.IntervalSeconds() * float64(time.Second))
}

// CueDuration is how long the cue stays on screen, in seconds.
func (s Settings) CueDuration() float64 {
	return s.cueDurationSeconds
}

// CueDurationValue is the cue duration as a time.Duration.
func (s Settings) CueDurationValue() time.Duration {
	return time.Duration(s.cueDurationSeconds * float64(time.Second))
}

// IsReminderAllowed reports whether a reminder may fire at now, read as wall
// clock time in loc. A nil loc uses now's own location.
//
// Office hours with equal start and end are an always-on window: reminders are
// allowed at every instant, never blocked. An end before the start describes an
// overnight window such as 22:00 to 06:00.
func (s Settings) IsReminderAllowed(now time.Time, loc *time.Location) bool {
	if !s.restrictToOfficeHours {
		return true
	}

	start, end := s.officeHoursStartMinutes, s.officeHoursEndMinutes
	if start == end {
		return true
	}

	minute := MinuteOfDay(now, loc)
	if start < end {
		return minute >= start && minute < end
	}
	return minute >= start || minute < end
}

// NextOfficeHoursStart returns the next instant after which the office hours
// window opens. It reports false when there is nothing to wait for: the window
// is unrestricted or always-on, or a reminder is already allowed at after.
func (s Settings) NextOfficeHoursStart(after time.Time, loc *time.Location) (time.Time, bool) {
	if !s.restrictToOfficeHours {
		return time.Time{}, false
	}
	if s.officeHoursStartMinutes == s.officeHoursEndMinutes {
		return time.Time{}, false
	}
	if s.IsReminderAllowed(after, loc) {
		return time.Time{}, false
	}

	local := inLocation(after, loc)
	todayStart := atMinuteOfDay(local, 0, s.officeHoursStartMinutes)
	if todayStart.After(after) {
		return todayStart, true
	}
	return atMinuteOfDay(local, 1, s.officeHoursStartMinutes), true
}

// MinuteOfDay returns hour*60+minute of t in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := inLocation(t, loc)
	return local.Hour()*60 + local.Minute()
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// atMinuteOfDay returns the wall clock minute on the day of t shifted by dayOffset days.
func atMinuteOfDay(t time.Time, dayOffset, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+dayOffset, minute/60, minute%60, 0, 0, t.Location())
}

func clamp(value, lower, upper float64) float64 {
	if math.IsNaN(value) {
		return lower
	}
	return math.Min(math.Max(value, lower), upper)
}

func clampMinuteOfDay(value float64) int {
	return int(clamp(math.Round(value), constants.MinOfficeHoursMinutes, constants.MaxOfficeHoursMinutes))
}
