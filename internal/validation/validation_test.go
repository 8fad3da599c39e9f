package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/julianstephens/eyerest/internal/models"
)

func raw(edit func(*models.RawSettings)) models.RawSettings {
	r := models.DefaultSettings().Raw()
	if edit != nil {
		edit(&r)
	}
	return r
}

func noticeTypes(notices []Notice) []NoticeType {
	types := make([]NoticeType, len(notices))
	for i, n := range notices {
		types[i] = n.Type
	}
	return types
}

func TestClampNotices(t *testing.T) {
	tests := []struct {
		name  string
		raw   models.RawSettings
		want  []NoticeType
		field string
	}{
		{
			name: "in range",
			raw:  raw(nil),
			want: []NoticeType{},
		},
		{
			name:  "interval too small",
			raw:   raw(func(r *models.RawSettings) { r.IntervalMinutes = -4 }),
			want:  []NoticeType{NoticeIntervalClamped},
			field: "interval",
		},
		{
			name:  "interval NaN",
			raw:   raw(func(r *models.RawSettings) { r.IntervalMinutes = math.NaN() }),
			want:  []NoticeType{NoticeIntervalClamped},
			field: "interval",
		},
		{
			name:  "cue too long",
			raw:   raw(func(r *models.RawSettings) { r.CueDurationSeconds = 100 }),
			want:  []NoticeType{NoticeCueDurationClamped},
			field: "cue-duration",
		},
		{
			name:  "office start rounded",
			raw:   raw(func(r *models.RawSettings) { r.OfficeHoursStartMinutes = 540.6 }),
			want:  []NoticeType{NoticeOfficeHoursAdjusted},
			field: "office-start",
		},
		{
			name: "several at once",
			raw: raw(func(r *models.RawSettings) {
				r.IntervalMinutes = 500
				r.CueDurationSeconds = 0
				r.OfficeHoursEndMinutes = 2000
			}),
			want: []NoticeType{NoticeIntervalClamped, NoticeCueDurationClamped, NoticeOfficeHoursAdjusted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampNotices(tt.raw, models.NewSettings(tt.raw))
			gotTypes := noticeTypes(got)
			if len(gotTypes) != len(tt.want) {
				t.Fatalf("ClampNotices() = %v, want %v", gotTypes, tt.want)
			}
			for i := range tt.want {
				if gotTypes[i] != tt.want[i] {
					t.Errorf("notice %d = %v, want %v", i, gotTypes[i], tt.want[i])
				}
			}
			if tt.field != "" && got[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", got[0].Field, tt.field)
			}
		})
	}
}

func TestClampNoticesDescribeAppliedValue(t *testing.T) {
	r := raw(func(r *models.RawSettings) { r.IntervalMinutes = 300 })
	notices := ClampNotices(r, models.NewSettings(r))
	if len(notices) != 1 || !strings.Contains(notices[0].Description, "240 min") {
		t.Errorf("ClampNotices() = %+v, want a description mentioning 240 min", notices)
	}
}

func TestCheckSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings models.Settings
		want     []NoticeType
	}{
		{"defaults", models.DefaultSettings(), nil},
		{
			"disabled",
			models.DefaultSettings().With(func(r *models.RawSettings) { r.Enabled = false }),
			[]NoticeType{NoticeRemindersDisabled},
		},
		{
			"unknown accent",
			models.DefaultSettings().With(func(r *models.RawSettings) { r.AccentColor = "chartreuse" }),
			[]NoticeType{NoticeUnknownAccent},
		},
		{
			"always-on window",
			models.DefaultSettings().With(func(r *models.RawSettings) {
				r.RestrictToOfficeHours = true
				r.OfficeHoursStartMinutes = 600
				r.OfficeHoursEndMinutes = 600
			}),
			[]NoticeType{NoticeAlwaysOnWindow},
		},
		{
			"overnight window",
			models.DefaultSettings().With(func(r *models.RawSettings) {
				r.RestrictToOfficeHours = true
				r.OfficeHoursStartMinutes = 22 * 60
				r.OfficeHoursEndMinutes = 6 * 60
			}),
			[]NoticeType{NoticeOvernightWindow},
		},
		{
			"equal window ignored when unrestricted",
			models.DefaultSettings().With(func(r *models.RawSettings) {
				r.OfficeHoursStartMinutes = 600
				r.OfficeHoursEndMinutes = 600
			}),
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckSettings(tt.settings)
			got := noticeTypes(result.Notices)
			if len(got) != len(tt.want) {
				t.Fatalf("CheckSettings() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("notice %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if result.HasNotices() != (len(tt.want) > 0) {
				t.Errorf("HasNotices() = %v", result.HasNotices())
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	var empty Result
	if got := empty.FormatReport(); got != "Settings look good." {
		t.Errorf("FormatReport() = %q", got)
	}

	r := CheckSettings(models.DefaultSettings().With(func(r *models.RawSettings) { r.Enabled = false }))
	if got := r.FormatReport(); !strings.HasPrefix(got, "- Reminders are disabled.") {
		t.Errorf("FormatReport() = %q", got)
	}
}
