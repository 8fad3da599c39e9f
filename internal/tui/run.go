package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/reminder"
	"github.com/julianstephens/eyerest/internal/scheduler"
)

// Run starts the dashboard on the alternate screen and blocks until the user
// quits.
func Run(store reminder.SettingsStore, settings models.Settings, opts ...reminder.Option) error {
	bridge := &Bridge{}
	timer := scheduler.New(bridge.Dispatch)

	m := NewModel(store, timer, settings, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen())
	bridge.Attach(p)

	_, err := p.Run()
	m.controller.Close()
	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
