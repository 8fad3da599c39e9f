package constants

const (
	// Settings keys, shared by every settings store
	SettingEnabled                 = "enabled"
	SettingIntervalMinutes         = "interval_minutes"
	SettingCueDurationSeconds      = "cue_duration_seconds"
	SettingAccentColor             = "accent_color"
	SettingRestrictToOfficeHours   = "restrict_to_office_hours"
	SettingOfficeHoursStartMinutes = "office_hours_start_minutes"
	SettingOfficeHoursEndMinutes   = "office_hours_end_minutes"

	// Settings bounds
	MinIntervalMinutes     = 1.0
	MaxIntervalMinutes     = 240.0
	MinCueDurationSeconds  = 1.0
	MaxCueDurationSeconds  = 30.0
	MinOfficeHoursMinutes  = 0
	MaxOfficeHoursMinutes  = 1439
	IntervalStepMinutes    = 1.0
	CueDurationStepSeconds = 1.0

	// Default Settings Values
	DefaultEnabled                 = true
	DefaultIntervalMinutes         = 20.0
	DefaultCueDurationSeconds      = 5.0
	DefaultAccentColor             = "red"
	DefaultRestrictToOfficeHours   = false
	DefaultOfficeHoursStartMinutes = 9 * 60
	DefaultOfficeHoursEndMinutes   = 17 * 60
	DefaultTimezone                = "Local" // Use system local timezone by default
)
