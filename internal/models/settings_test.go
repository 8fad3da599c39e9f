package models

import (
	"math"
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.January, 15, hour, minute, 0, 0, time.UTC)
}

func officeHours(start, end float64) Settings {
	return NewSettings(RawSettings{
		Enabled:                 true,
		IntervalMinutes:         20,
		CueDurationSeconds:      5,
		AccentColor:             AccentRed,
		RestrictToOfficeHours:   true,
		OfficeHoursStartMinutes: start,
		OfficeHoursEndMinutes:   end,
	})
}

func TestNewSettingsClampsInterval(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -4, 1},
		{"zero", 0, 1},
		{"below minimum", 0.5, 1},
		{"minimum", 1, 1},
		{"in range", 12, 12},
		{"fractional", 12.5, 12.5},
		{"maximum", 240, 240},
		{"above maximum", 241, 240},
		{"huge", 1e9, 240},
		{"positive infinity", math.Inf(1), 240},
		{"negative infinity", math.Inf(-1), 1},
		{"NaN", math.NaN(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings(RawSettings{IntervalMinutes: tt.in, CueDurationSeconds: 5})
			if got := s.IntervalMinutes(); got != tt.want {
				t.Errorf("IntervalMinutes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSettingsClampsCueDuration(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below minimum", -1, 1},
		{"minimum", 1, 1},
		{"in range", 7, 7},
		{"maximum", 30, 30},
		{"above maximum", 100, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings(RawSettings{IntervalMinutes: 20, CueDurationSeconds: tt.in})
			if got := s.CueDurationSeconds(); got != tt.want {
				t.Errorf("CueDurationSeconds() = %v, want %v", got, tt.want)
			}
			if got := s.CueDuration(); got != tt.want {
				t.Errorf("CueDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSettingsClampsAndRoundsOfficeHours(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"negative", -30, 0},
		{"midnight", 0, 0},
		{"rounds down", 540.4, 540},
		{"rounds half away from zero", 540.5, 541},
		{"rounds up", 540.6, 541},
		{"last minute", 1439, 1439},
		{"rounds to last minute", 1439.4, 1439},
		{"past end of day", 1440, 1439},
		{"far past end of day", 5000, 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := officeHours(tt.in, tt.in)
			if got := s.OfficeHoursStartMinutes(); got != tt.want {
				t.Errorf("OfficeHoursStartMinutes() = %d, want %d", got, tt.want)
			}
			if got := s.OfficeHoursEndMinutes(); got != tt.want {
				t.Errorf("OfficeHoursEndMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntervalSecondsConversion(t *testing.T) {
	s := NewSettings(RawSettings{Enabled: true, IntervalMinutes: 12, CueDurationSeconds: 5})
	if got := s.IntervalSeconds(); got != 720 {
		t.Errorf("IntervalSeconds() = %v, want 720", got)
	}
	if got := s.Interval(); got != 12*time.Minute {
		t.Errorf("Interval() = %v, want %v", got, 12*time.Minute)
	}
	if got := s.IntervalSeconds(); got != s.IntervalMinutes()*60 {
		t.Errorf("IntervalSeconds() = %v, want IntervalMinutes()*60 = %v", got, s.IntervalMinutes()*60)
	}
}

func TestNormalizedIsIdempotent(t *testing.T) {
	inputs := []RawSettings{
		{Enabled: true, IntervalMinutes: -4, CueDurationSeconds: 100, OfficeHoursStartMinutes: 540.6, OfficeHoursEndMinutes: 9999},
		{IntervalMinutes: 20, CueDurationSeconds: 5, AccentColor: AccentBlue, RestrictToOfficeHours: true},
		DefaultSettings().Raw(),
	}

	for _, raw := range inputs {
		s := NewSettings(raw)
		once := s.Normalized()
		twice := once.Normalized()
		if once != s {
			t.Errorf("Normalized() changed an already normalized value: %+v -> %+v", s, once)
		}
		if twice != once {
			t.Errorf("Normalized() not idempotent: %+v -> %+v", once, twice)
		}
	}
}

func TestSettingsEqualityIsStructural(t *testing.T) {
	a := NewSettings(RawSettings{Enabled: true, IntervalMinutes: 18, CueDurationSeconds: 8, AccentColor: AccentBlue})
	b := NewSettings(RawSettings{Enabled: true, IntervalMinutes: 18, CueDurationSeconds: 8, AccentColor: AccentBlue})
	if a != b {
		t.Errorf("expected equal settings, got %+v and %+v", a, b)
	}

	c := b.With(func(r *RawSettings) { r.AccentColor = AccentGreen })
	if a == c {
		t.Error("expected settings with different accent colors to differ")
	}
	if b.AccentColor() != AccentBlue {
		t.Error("With() must not modify the receiver")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.Enabled() {
		t.Error("expected defaults to be enabled")
	}
	if s.IntervalMinutes() != 20 {
		t.Errorf("IntervalMinutes() = %v, want 20", s.IntervalMinutes())
	}
	if s.CueDurationSeconds() != 5 {
		t.Errorf("CueDurationSeconds() = %v, want 5", s.CueDurationSeconds())
	}
	if s.AccentColor() != AccentRed {
		t.Errorf("AccentColor() = %v, want red", s.AccentColor())
	}
	if s.RestrictToOfficeHours() {
		t.Error("expected defaults to be unrestricted")
	}
	if s.OfficeHoursStartMinutes() != 540 || s.OfficeHoursEndMinutes() != 1020 {
		t.Errorf("office hours = %d-%d, want 540-1020", s.OfficeHoursStartMinutes(), s.OfficeHoursEndMinutes())
	}
}

func TestIsReminderAllowed(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		now      time.Time
		want     bool
	}{
		{"unrestricted", DefaultSettings(), at(3, 0), true},
		{"day window before start", officeHours(9*60, 17*60), at(8, 59), false},
		{"day window at start", officeHours(9*60, 17*60), at(9, 0), true},
		{"day window inside", officeHours(9*60, 17*60), at(16, 30), true},
		{"day window at end", officeHours(9*60, 17*60), at(17, 0), false},
		{"day window late", officeHours(9*60, 17*60), at(23, 59), false},
		{"overnight late evening", officeHours(22*60, 6*60), at(23, 0), true},
		{"overnight at start", officeHours(22*60, 6*60), at(22, 0), true},
		{"overnight early morning", officeHours(22*60, 6*60), at(2, 0), true},
		{"overnight at end", officeHours(22*60, 6*60), at(6, 0), false},
		{"overnight midday", officeHours(22*60, 6*60), at(12, 0), false},
		{"equal start and end at start", officeHours(10*60, 10*60), at(10, 0), true},
		{"equal start and end elsewhere", officeHours(10*60, 10*60), at(3, 17), true},
		{"equal start and end at midnight", officeHours(0, 0), at(0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.IsReminderAllowed(tt.now, time.UTC); got != tt.want {
				t.Errorf("IsReminderAllowed(%s) = %v, want %v", tt.now.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestIsReminderAllowedUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	s := officeHours(9*60, 17*60)

	// 07:00 UTC is 10:00 in UTC+3.
	now := at(7, 0)
	if s.IsReminderAllowed(now, time.UTC) {
		t.Error("expected 07:00 UTC to be outside office hours")
	}
	if !s.IsReminderAllowed(now, loc) {
		t.Error("expected 10:00 UTC+3 to be inside office hours")
	}
	if s.IsReminderAllowed(now, nil) {
		t.Error("expected nil location to read the instant in its own location")
	}
}

func TestNextOfficeHoursStart(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		after    time.Time
		want     time.Time
		wantOK   bool
	}{
		{"unrestricted", DefaultSettings(), at(3, 0), time.Time{}, false},
		{"always-on window", officeHours(600, 600), at(3, 0), time.Time{}, false},
		{"inside window", officeHours(9*60, 17*60), at(10, 0), time.Time{}, false},
		{"before window", officeHours(9*60, 17*60), at(8, 45), at(9, 0), true},
		{"after window", officeHours(9*60, 17*60), at(17, 0), at(9, 0).AddDate(0, 0, 1), true},
		{"overnight gap", officeHours(22*60, 6*60), at(12, 0), at(22, 0), true},
		{"overnight at end", officeHours(22*60, 6*60), at(6, 0), at(22, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.settings.NextOfficeHoursStart(tt.after, time.UTC)
			if ok != tt.wantOK {
				t.Fatalf("NextOfficeHoursStart() ok = %v, want %v", ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOfficeHoursStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextOfficeHoursStartRollsOverMonthEnd(t *testing.T) {
	s := officeHours(9*60, 17*60)
	after := time.Date(2026, time.January, 31, 18, 0, 0, 0, time.UTC)
	want := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

	got, ok := s.NextOfficeHoursStart(after, time.UTC)
	if !ok {
		t.Fatal("expected a next start")
	}
	if !got.Equal(want) {
		t.Errorf("NextOfficeHoursStart() = %v, want %v", got, want)
	}
}

func TestParseAccentColor(t *testing.T) {
	for _, c := range AccentColors() {
		got, ok := ParseAccentColor(string(c))
		if !ok || got != c {
			t.Errorf("ParseAccentColor(%q) = %q, %v", c, got, ok)
		}
	}
	if _, ok := ParseAccentColor("purple"); ok {
		t.Error("expected purple to be rejected")
	}
}
