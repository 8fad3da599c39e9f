package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/reminder"
	"github.com/julianstephens/eyerest/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateCue:
		return m.viewCue()
	case constants.StateEditSettings:
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Settings"),
			m.form.View(),
			m.viewError(),
		))
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("eyerest"),
		"",
		m.viewCountdown(),
		"",
		m.viewCards(),
		m.viewEnabled(),
		m.viewOfficeHours(),
		m.viewError(),
		"",
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewCountdown() string {
	cd := m.controller.Countdown(m.now())

	value := "--:--"
	if cd.Phase == reminder.PhaseTicking {
		value = utils.FormatRemaining(cd.Remaining)
	}
	dot := lipgloss.NewStyle().Foreground(dotColor(cd.Phase)).Render("●")

	return lipgloss.JoinHorizontal(lipgloss.Center,
		dot, " ",
		labelStyle.Render(cd.Title()), "  ",
		countdownStyle.Render(value),
	)
}

func (m Model) viewCards() string {
	s := m.controller.Settings()
	interval := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Interval"),
		fmt.Sprintf("%s  [-/+]", utils.FormatInterval(s.IntervalMinutes())),
	))
	cue := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Cue duration"),
		fmt.Sprintf("%s  [[/]]", utils.FormatCueDuration(s.CueDurationSeconds())),
	))
	return lipgloss.JoinHorizontal(lipgloss.Top, interval, " ", cue)
}

func (m Model) viewEnabled() string {
	mark := "[ ]"
	if m.controller.Settings().Enabled() {
		mark = "[x]"
	}
	return fmt.Sprintf("%s Enable reminders", mark)
}

func (m Model) viewOfficeHours() string {
	s := m.controller.Settings()
	if !s.RestrictToOfficeHours() {
		return labelStyle.Render("Office hours: off")
	}
	line := fmt.Sprintf("Office hours: %s - %s",
		utils.FormatClock(s.OfficeHoursStartMinutes()),
		utils.FormatClock(s.OfficeHoursEndMinutes()))
	if next, ok := m.controller.NextOfficeHoursStart(); ok {
		line += fmt.Sprintf(" (opens %s)", next.Format(constants.TimeFormat))
	}
	return labelStyle.Render(line)
}

func (m Model) viewError() string {
	var lines []string
	if m.notice != "" {
		lines = append(lines, warningStyle.Render(m.notice))
	}
	if m.formError != "" {
		lines = append(lines, dangerStyle.Render(m.formError))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCue() string {
	accent := accentColor(m.controller.Settings().AccentColor())

	elapsed := m.now().Sub(m.cue.shownAt)
	remaining := 1.0
	if m.cue.duration > 0 {
		remaining = 1 - float64(elapsed)/float64(m.cue.duration)
	}
	remaining = min(max(remaining, 0), 1)

	content := lipgloss.JoinVertical(lipgloss.Center,
		cueTextStyle.Foreground(accent).Render(constants.CueMessage),
		m.progress.ViewAs(remaining),
	)

	border := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent)
	if m.width > 2 && m.height > 2 {
		border = border.
			Width(m.width-2).
			Height(m.height-2).
			Align(lipgloss.Center, lipgloss.Center)
	}
	return border.Render(content)
}
