// Package tui is the interactive terminal host for the reminder controller.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/reminder"
)

type SettingsFormModel struct {
	Enabled     bool
	Interval    string
	CueDuration string
	Accent      models.AccentColor
	Restrict    bool
	OfficeStart string
	OfficeEnd   string
}

type cueState struct {
	seq      int
	shownAt  time.Time
	duration time.Duration
}

type Model struct {
	store         reminder.SettingsStore
	controller    *reminder.Controller
	presenter     *cuePresenter
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	progress      progress.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel
	cue           cueState
	now           func() time.Time
	quitting      bool
	width         int
	height        int
	notice        string // Last clamp notice, cleared on the next change
	formError     string
}

// NewModel builds the dashboard around a controller driven by sched. The
// controller is started by Init.
func NewModel(store reminder.SettingsStore, sched reminder.Scheduler, settings models.Settings, opts ...reminder.Option) Model {
	presenter := &cuePresenter{}
	controller := reminder.NewController(settings, sched, presenter, opts...)

	return Model{
		store:      store,
		controller: controller,
		presenter:  presenter,
		state:      constants.StateDashboard,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		progress:   newProgress(settings.AccentColor()),
		now:        time.Now,
	}
}

func newProgress(accent models.AccentColor) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(accentColor(accent))),
		progress.WithoutPercentage(),
	)
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	m.controller.Start()
	return tick()
}

// Controller exposes the controller for the host's shutdown path.
func (m Model) Controller() *reminder.Controller {
	return m.controller
}
