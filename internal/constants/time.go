package constants

const (
	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MinutesPerDay is the number of minutes in a calendar day
	MinutesPerDay = 24 * 60
)
