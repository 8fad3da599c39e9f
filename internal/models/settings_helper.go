package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/eyerest/internal/constants"
)

// MapToSettings converts stored key-value pairs to Settings.
//
// Storage written before any save carries no interval key; in that case the
// fallback is returned whole. Otherwise enabled, interval and cue duration are
// read as stored (missing values become zero and are clamped), while accent
// color and office hours fall back key by key, so data saved by older
// versions keeps the fallback office hours instead of midnight.
func MapToSettings(data map[string]string, fallback Settings) (Settings, error) {
	if _, ok := data[constants.SettingIntervalMinutes]; !ok {
		return fallback.Normalized(), nil
	}

	raw := fallback.Raw()
	raw.Enabled = false
	raw.IntervalMinutes = 0
	raw.CueDurationSeconds = 0

	for key, value := range data {
		switch key {
		case constants.SettingEnabled:
			raw.Enabled = value == "true"
		case constants.SettingIntervalMinutes:
			v, err := parseFloat(key, value)
			if err != nil {
				return Settings{}, err
			}
			raw.IntervalMinutes = v
		case constants.SettingCueDurationSeconds:
			v, err := parseFloat(key, value)
			if err != nil {
				return Settings{}, err
			}
			raw.CueDurationSeconds = v
		case constants.SettingAccentColor:
			if color, ok := ParseAccentColor(value); ok {
				raw.AccentColor = color
			}
		case constants.SettingRestrictToOfficeHours:
			raw.RestrictToOfficeHours = value == "true"
		case constants.SettingOfficeHoursStartMinutes:
			v, err := parseFloat(key, value)
			if err != nil {
				return Settings{}, err
			}
			raw.OfficeHoursStartMinutes = v
		case constants.SettingOfficeHoursEndMinutes:
			v, err := parseFloat(key, value)
			if err != nil {
				return Settings{}, err
			}
			raw.OfficeHoursEndMinutes = v
		}
	}

	return NewSettings(raw), nil
}

// SettingsToMap converts normalized settings to key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	s := settings.Normalized()
	return map[string]string{
		constants.SettingEnabled:                 strconv.FormatBool(s.Enabled()),
		constants.SettingIntervalMinutes:         strconv.FormatFloat(s.IntervalMinutes(), 'f', -1, 64),
		constants.SettingCueDurationSeconds:      strconv.FormatFloat(s.CueDurationSeconds(), 'f', -1, 64),
		constants.SettingAccentColor:             string(s.AccentColor()),
		constants.SettingRestrictToOfficeHours:   strconv.FormatBool(s.RestrictToOfficeHours()),
		constants.SettingOfficeHoursStartMinutes: strconv.Itoa(s.OfficeHoursStartMinutes()),
		constants.SettingOfficeHoursEndMinutes:   strconv.Itoa(s.OfficeHoursEndMinutes()),
	}
}

// SettingKeys returns the stored keys in a stable order.
func SettingKeys() []string {
	return []string{
		constants.SettingEnabled,
		constants.SettingIntervalMinutes,
		constants.SettingCueDurationSeconds,
		constants.SettingAccentColor,
		constants.SettingRestrictToOfficeHours,
		constants.SettingOfficeHoursStartMinutes,
		constants.SettingOfficeHoursEndMinutes,
	}
}

func parseFloat(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return v, nil
}
