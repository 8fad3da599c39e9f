package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/reminder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	countdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Width(22)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	cueTextStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

var accentPalette = map[models.AccentColor]lipgloss.Color{
	models.AccentRed:    lipgloss.Color("196"),
	models.AccentOrange: lipgloss.Color("208"),
	models.AccentYellow: lipgloss.Color("226"),
	models.AccentGreen:  lipgloss.Color("46"),
	models.AccentBlue:   lipgloss.Color("33"),
	models.AccentPink:   lipgloss.Color("205"),
}

// accentColor maps an accent to a terminal color. Unknown accents render red.
func accentColor(c models.AccentColor) lipgloss.Color {
	if color, ok := accentPalette[c]; ok {
		return color
	}
	return accentPalette[models.AccentRed]
}

func dotColor(p reminder.Phase) lipgloss.Color {
	switch p {
	case reminder.PhaseTicking:
		return lipgloss.Color("42")
	case reminder.PhasePending:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("240")
	}
}
