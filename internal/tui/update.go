package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/logger"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/validation"
)

type tickMsg time.Time

// hideCueMsg ends the cue shown with the same sequence number. A newer cue
// bumps the sequence, so an older hide is ignored.
type hideCueMsg struct {
	seq int
}

type cueFrameMsg struct {
	seq int
}

const cueFrameInterval = 100 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(constants.CountdownRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func cueFrame(seq int) tea.Cmd {
	return tea.Tick(cueFrameInterval, func(time.Time) tea.Msg {
		return cueFrameMsg{seq: seq}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, msg.Width-12)
		return m, nil

	case tickMsg:
		m.controller.RefreshSchedule()
		cmd := m.flushCues()
		return m, tea.Batch(tick(), cmd)

	case dispatchMsg:
		msg.f()
		cmd := m.flushCues()
		return m, cmd

	case hideCueMsg:
		if msg.seq == m.cue.seq && m.state == constants.StateCue {
			m.state = m.previousState
		}
		return m, nil

	case cueFrameMsg:
		if msg.seq == m.cue.seq && m.state == constants.StateCue {
			return m, cueFrame(msg.seq)
		}
		return m, nil
	}

	if m.state == constants.StateEditSettings {
		cmd := m.updateForm(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.controller.Stop()
		return m, tea.Quit
	}

	// The cue only listens for quit.
	if m.state == constants.StateCue {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.IntervalUp):
		m.step(func(r *models.RawSettings) { r.IntervalMinutes += constants.IntervalStepMinutes })
	case key.Matches(msg, m.keys.IntervalDown):
		m.step(func(r *models.RawSettings) { r.IntervalMinutes -= constants.IntervalStepMinutes })
	case key.Matches(msg, m.keys.CueUp):
		m.step(func(r *models.RawSettings) { r.CueDurationSeconds += constants.CueDurationStepSeconds })
	case key.Matches(msg, m.keys.CueDown):
		m.step(func(r *models.RawSettings) { r.CueDurationSeconds -= constants.CueDurationStepSeconds })
	case key.Matches(msg, m.keys.Toggle):
		m.step(func(r *models.RawSettings) { r.Enabled = !r.Enabled })
	case key.Matches(msg, m.keys.Trigger):
		m.controller.TriggerNow()
		cmd := m.flushCues()
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		cmd := m.openForm()
		return m, cmd
	}
	return m, nil
}

// step edits the current settings the way a stepper does: out of range values
// stop at the bound without a notice.
func (m *Model) step(edit func(*models.RawSettings)) {
	m.notice = ""
	m.applySettings(m.controller.Settings().With(edit))
}

// applyRaw saves settings entered by the user and reports any value that had
// to be clamped.
func (m *Model) applyRaw(raw models.RawSettings) {
	next := models.NewSettings(raw)
	notices := validation.ClampNotices(raw, next)
	descriptions := make([]string, len(notices))
	for i, n := range notices {
		descriptions[i] = n.Description
	}
	m.notice = strings.Join(descriptions, " ")
	m.applySettings(next)
}

// applySettings normalizes, saves, then applies. A failed save leaves the
// controller on the previous settings.
func (m *Model) applySettings(next models.Settings) {
	next = next.Normalized()
	if err := m.store.SaveSettings(next); err != nil {
		logger.Error("tui: saving settings failed", "error", err)
		m.formError = "Failed to save settings: " + err.Error()
		return
	}
	m.formError = ""
	m.controller.Apply(next)
}

// flushCues shows every cue the controller raised since the last flush.
func (m *Model) flushCues() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.presenter.take() {
		cmds = append(cmds, m.showCue(d))
	}
	return tea.Batch(cmds...)
}

// showCue switches to the cue screen and schedules its end. Showing again
// while visible restarts the hide timer.
func (m *Model) showCue(durationSeconds float64) tea.Cmd {
	visible := max(time.Duration(durationSeconds*float64(time.Second)), constants.MinOverlayVisible)

	if m.state != constants.StateCue {
		m.previousState = m.state
		m.state = constants.StateCue
	}

	width := m.progress.Width
	m.progress = newProgress(m.controller.Settings().AccentColor())
	m.progress.Width = width

	m.cue.seq++
	m.cue.shownAt = m.now()
	m.cue.duration = visible

	seq := m.cue.seq
	return tea.Batch(
		tea.Tick(visible, func(time.Time) tea.Msg { return hideCueMsg{seq: seq} }),
		cueFrame(seq),
	)
}
