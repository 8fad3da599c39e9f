package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/utils"
)

func newSettingsFormModel(s models.Settings) *SettingsFormModel {
	return &SettingsFormModel{
		Enabled:     s.Enabled(),
		Interval:    strconv.FormatFloat(s.IntervalMinutes(), 'f', -1, 64),
		CueDuration: strconv.FormatFloat(s.CueDurationSeconds(), 'f', -1, 64),
		Accent:      s.AccentColor(),
		Restrict:    s.RestrictToOfficeHours(),
		OfficeStart: utils.FormatClock(s.OfficeHoursStartMinutes()),
		OfficeEnd:   utils.FormatClock(s.OfficeHoursEndMinutes()),
	}
}

// raw converts the form back to settings input. Values are not clamped here.
func (fm *SettingsFormModel) raw() (models.RawSettings, error) {
	interval, err := parseNumber(fm.Interval)
	if err != nil {
		return models.RawSettings{}, fmt.Errorf("interval: %w", err)
	}
	cue, err := parseNumber(fm.CueDuration)
	if err != nil {
		return models.RawSettings{}, fmt.Errorf("cue duration: %w", err)
	}
	start, err := utils.ParseClock(fm.OfficeStart)
	if err != nil {
		return models.RawSettings{}, fmt.Errorf("office hours start: %w", err)
	}
	end, err := utils.ParseClock(fm.OfficeEnd)
	if err != nil {
		return models.RawSettings{}, fmt.Errorf("office hours end: %w", err)
	}

	return models.RawSettings{
		Enabled:                 fm.Enabled,
		IntervalMinutes:         interval,
		CueDurationSeconds:      cue,
		AccentColor:             fm.Accent,
		RestrictToOfficeHours:   fm.Restrict,
		OfficeHoursStartMinutes: float64(start),
		OfficeHoursEndMinutes:   float64(end),
	}, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	return v, nil
}

func validateNumber(s string) error {
	_, err := parseNumber(s)
	return err
}

func validateClock(s string) error {
	if _, err := utils.ParseClock(s); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

func newSettingsForm(fm *SettingsFormModel) *huh.Form {
	accents := make([]huh.Option[models.AccentColor], 0, len(models.AccentColors()))
	for _, c := range models.AccentColors() {
		accents = append(accents, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable reminders").
				Value(&fm.Enabled),
			huh.NewInput().
				Title("Interval (minutes)").
				Description(fmt.Sprintf("Between %v and %v.", constants.MinIntervalMinutes, constants.MaxIntervalMinutes)).
				Value(&fm.Interval).
				Validate(validateNumber),
			huh.NewInput().
				Title("Cue duration (seconds)").
				Description(fmt.Sprintf("Between %v and %v.", constants.MinCueDurationSeconds, constants.MaxCueDurationSeconds)).
				Value(&fm.CueDuration).
				Validate(validateNumber),
			huh.NewSelect[models.AccentColor]().
				Title("Accent color").
				Options(accents...).
				Value(&fm.Accent),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Only remind during office hours").
				Value(&fm.Restrict),
			huh.NewInput().
				Title("Office hours start (HH:MM)").
				Value(&fm.OfficeStart).
				Validate(validateClock),
			huh.NewInput().
				Title("Office hours end (HH:MM)").
				Description("Same as start means all day. Earlier than start runs overnight.").
				Value(&fm.OfficeEnd).
				Validate(validateClock),
		),
	)
}

func (m *Model) openForm() tea.Cmd {
	m.settingsForm = newSettingsFormModel(m.controller.Settings())
	m.form = newSettingsForm(m.settingsForm)
	m.formError = ""
	m.state = constants.StateEditSettings
	return m.form.Init()
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = constants.StateDashboard
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		raw, err := m.settingsForm.raw()
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return cmd
		}
		m.applyRaw(raw)
		if m.formError != "" {
			// Stay in the form so the user can retry.
			m.form.State = huh.StateNormal
			return cmd
		}
		m.state = constants.StateDashboard
	case huh.StateAborted:
		m.formError = ""
		m.state = constants.StateDashboard
	}
	return cmd
}
