package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/eyerest/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// ParseClock parses an HH:MM wall-clock time into minutes after midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes after midnight as HH:MM.
func FormatClock(minuteOfDay int) string {
	m := ((minuteOfDay % constants.MinutesPerDay) + constants.MinutesPerDay) % constants.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatInterval renders a reminder interval, truncated to whole minutes.
func FormatInterval(minutes float64) string {
	return fmt.Sprintf("%d min", int(minutes))
}

// FormatCueDuration renders a cue duration, truncated to whole seconds.
func FormatCueDuration(seconds float64) string {
	return fmt.Sprintf("%d s", int(seconds))
}

// FormatRemaining renders a countdown as MM:SS, or H:MM:SS from one hour up.
// Partial seconds round up; negative values show as zero.
func FormatRemaining(d time.Duration) string {
	total := int(math.Ceil(d.Seconds()))
	if total < 0 {
		total = 0
	}
	hours, minutes, seconds := total/3600, (total%3600)/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
