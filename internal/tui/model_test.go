package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/reminder"
)

type fakeScheduler struct {
	starts []float64
	stops  int
	active bool
	onFire func()
	next   time.Time
}

func (s *fakeScheduler) Start(periodSeconds float64, onFire func()) {
	s.starts = append(s.starts, periodSeconds)
	s.active = true
	s.onFire = onFire
}

func (s *fakeScheduler) Stop() {
	s.stops++
	s.active = false
}

func (s *fakeScheduler) NextFireDate() (time.Time, bool) {
	if !s.active {
		return time.Time{}, false
	}
	return s.next, true
}

type fakeStore struct {
	saved []models.Settings
	err   error
}

func (s *fakeStore) LoadSettings() (models.Settings, error) {
	if len(s.saved) == 0 {
		return models.DefaultSettings(), nil
	}
	return s.saved[len(s.saved)-1], nil
}

func (s *fakeStore) SaveSettings(settings models.Settings) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, settings)
	return nil
}

var testNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, settings models.Settings) (Model, *fakeScheduler, *fakeStore) {
	t.Helper()
	sched := &fakeScheduler{next: testNow.Add(19*time.Minute + 30*time.Second)}
	store := &fakeStore{}
	clock := func() time.Time { return testNow }

	m := NewModel(store, sched, settings, reminder.WithClock(clock), reminder.WithLocation(time.UTC))
	m.now = clock
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected Init to schedule the countdown tick")
	}
	return m, sched, store
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model), cmd
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestInitStartsController(t *testing.T) {
	_, sched, _ := newTestModel(t, models.DefaultSettings())

	if len(sched.starts) != 1 || sched.starts[0] != 1200 {
		t.Errorf("starts = %v, want [1200]", sched.starts)
	}
}

func TestStepperSavesThenApplies(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		wantInterval float64
		wantCue      float64
	}{
		{"interval up", "+", 21, 5},
		{"interval down", "-", 19, 5},
		{"cue up", "]", 20, 6},
		{"cue down", "[", 20, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sched, store := newTestModel(t, models.DefaultSettings())

			m, _ = press(t, m, tt.key)

			if len(store.saved) != 1 {
				t.Fatalf("saved %d times, want 1", len(store.saved))
			}
			got := store.saved[0]
			if got.IntervalMinutes() != tt.wantInterval || got.CueDurationSeconds() != tt.wantCue {
				t.Errorf("saved interval=%v cue=%v, want %v/%v",
					got.IntervalMinutes(), got.CueDurationSeconds(), tt.wantInterval, tt.wantCue)
			}
			if m.controller.Settings() != got {
				t.Errorf("controller settings = %+v, want the saved value", m.controller.Settings())
			}
			wantStarts := []float64{1200, tt.wantInterval * 60}
			if len(sched.starts) != 2 || sched.starts[1] != wantStarts[1] {
				t.Errorf("starts = %v, want %v", sched.starts, wantStarts)
			}
		})
	}
}

func TestStepperStopsAtBoundWithoutNotice(t *testing.T) {
	top := models.DefaultSettings().With(func(r *models.RawSettings) { r.IntervalMinutes = constants.MaxIntervalMinutes })
	m, _, store := newTestModel(t, top)

	m, _ = press(t, m, "+")

	if got := store.saved[0].IntervalMinutes(); got != constants.MaxIntervalMinutes {
		t.Errorf("IntervalMinutes() = %v, want %v", got, constants.MaxIntervalMinutes)
	}
	if m.notice != "" {
		t.Errorf("notice = %q, want none", m.notice)
	}
}

func TestToggleDisablesReminders(t *testing.T) {
	m, sched, store := newTestModel(t, models.DefaultSettings())

	m, _ = press(t, m, "e")

	if store.saved[0].Enabled() {
		t.Error("expected disabled settings to be saved")
	}
	if sched.active {
		t.Error("expected the scheduler to be stopped")
	}
	if view := m.View(); !strings.Contains(view, "Reminders disabled") || !strings.Contains(view, "--:--") {
		t.Errorf("view does not show the disabled countdown:\n%s", view)
	}
}

func TestCountdownShowsRemainingTime(t *testing.T) {
	m, _, _ := newTestModel(t, models.DefaultSettings())

	view := m.View()
	if !strings.Contains(view, "Next break") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "19:30") {
		t.Errorf("view missing countdown 19:30:\n%s", view)
	}
	if !strings.Contains(view, "20 min") || !strings.Contains(view, "5 s") {
		t.Errorf("view missing interval or cue duration:\n%s", view)
	}
}

func TestSaveFailureKeepsPreviousSettings(t *testing.T) {
	m, sched, store := newTestModel(t, models.DefaultSettings())
	store.err = errors.New("disk full")

	m, _ = press(t, m, "+")

	if m.controller.Settings().IntervalMinutes() != 20 {
		t.Errorf("controller interval = %v, want 20", m.controller.Settings().IntervalMinutes())
	}
	if len(sched.starts) != 1 {
		t.Errorf("starts = %v, want only the initial start", sched.starts)
	}
	if !strings.Contains(m.formError, "disk full") {
		t.Errorf("formError = %q, want the save error", m.formError)
	}
}

func TestTriggerShowsCueAndHides(t *testing.T) {
	m, _, _ := newTestModel(t, models.DefaultSettings())

	m, cmd := press(t, m, "t")
	if cmd == nil {
		t.Fatal("expected a hide command")
	}
	if m.state != constants.StateCue {
		t.Fatalf("state = %v, want cue", m.state)
	}
	if m.cue.duration != 5*time.Second {
		t.Errorf("cue duration = %v, want 5s", m.cue.duration)
	}
	if !strings.Contains(m.View(), constants.CueMessage) {
		t.Error("cue view missing message")
	}

	m, _ = update(t, m, hideCueMsg{seq: m.cue.seq})
	if m.state != constants.StateDashboard {
		t.Errorf("state = %v, want dashboard", m.state)
	}
}

func TestSecondCueRestartsHideTimer(t *testing.T) {
	m, _, _ := newTestModel(t, models.DefaultSettings())

	m, _ = press(t, m, "t")
	first := m.cue.seq
	m.controller.TriggerNow()
	m, _ = update(t, m, dispatchMsg{f: func() {}})
	if m.cue.seq == first {
		t.Fatal("expected the second cue to bump the sequence")
	}

	m, _ = update(t, m, hideCueMsg{seq: first})
	if m.state != constants.StateCue {
		t.Error("a stale hide must not end the newer cue")
	}

	m, _ = update(t, m, hideCueMsg{seq: m.cue.seq})
	if m.state != constants.StateDashboard {
		t.Errorf("state = %v, want dashboard", m.state)
	}
}

func TestCueIgnoresKeysButQuit(t *testing.T) {
	m, _, store := newTestModel(t, models.DefaultSettings())
	m, _ = press(t, m, "t")

	m, _ = press(t, m, "+")
	if len(store.saved) != 0 {
		t.Error("expected steppers to be ignored while the cue is visible")
	}

	m, cmd := press(t, m, "q")
	if !m.quitting || cmd == nil {
		t.Error("expected quit to work while the cue is visible")
	}
}

func TestSchedulerFiringShowsCue(t *testing.T) {
	m, sched, _ := newTestModel(t, models.DefaultSettings())

	m, cmd := update(t, m, dispatchMsg{f: sched.onFire})

	if cmd == nil || m.state != constants.StateCue {
		t.Fatalf("state = %v, want cue", m.state)
	}
}

func TestStaleFiringAfterApplyShowsNothing(t *testing.T) {
	m, sched, _ := newTestModel(t, models.DefaultSettings())
	stale := sched.onFire

	m, _ = press(t, m, "+")
	m, _ = update(t, m, dispatchMsg{f: stale})

	if m.state != constants.StateDashboard {
		t.Errorf("state = %v, want dashboard", m.state)
	}
}

func TestMinimumCueVisibility(t *testing.T) {
	m, _, _ := newTestModel(t, models.DefaultSettings())

	cmd := m.showCue(0.01)
	if cmd == nil {
		t.Fatal("expected a hide command")
	}
	if m.cue.duration != constants.MinOverlayVisible {
		t.Errorf("cue duration = %v, want %v", m.cue.duration, constants.MinOverlayVisible)
	}
}

func TestHideReturnsToForm(t *testing.T) {
	m, _, _ := newTestModel(t, models.DefaultSettings())

	m, _ = press(t, m, "s")
	if m.state != constants.StateEditSettings {
		t.Fatalf("state = %v, want edit settings", m.state)
	}
	m, _ = update(t, m, dispatchMsg{f: m.controller.TriggerNow})
	if m.state != constants.StateCue {
		t.Fatalf("state = %v, want cue", m.state)
	}
	m, _ = update(t, m, hideCueMsg{seq: m.cue.seq})
	if m.state != constants.StateEditSettings {
		t.Errorf("state = %v, want edit settings", m.state)
	}
}

func TestQuitStopsController(t *testing.T) {
	m, sched, _ := newTestModel(t, models.DefaultSettings())

	m, cmd := press(t, m, "q")

	if cmd == nil || !m.quitting {
		t.Fatal("expected quit")
	}
	if sched.active {
		t.Error("expected the scheduler to be stopped")
	}
	if m.View() != "" {
		t.Error("expected an empty view after quitting")
	}
}

func TestTickRefreshesSchedule(t *testing.T) {
	officeHours := models.NewSettings(models.RawSettings{
		Enabled:                 true,
		IntervalMinutes:         20,
		CueDurationSeconds:      5,
		AccentColor:             models.AccentBlue,
		RestrictToOfficeHours:   true,
		OfficeHoursStartMinutes: 11 * 60,
		OfficeHoursEndMinutes:   17 * 60,
	})

	now := testNow
	sched := &fakeScheduler{}
	m := NewModel(&fakeStore{}, sched, officeHours,
		reminder.WithClock(func() time.Time { return now }),
		reminder.WithLocation(time.UTC))
	m.now = func() time.Time { return now }
	m.Init()

	if len(sched.starts) != 0 {
		t.Fatalf("starts = %v, want none before office hours", sched.starts)
	}
	if view := m.View(); !strings.Contains(view, "opens 11:00") {
		t.Errorf("view missing next office hours start:\n%s", view)
	}

	now = testNow.Add(time.Hour)
	m, cmd := update(t, m, tickMsg(now))
	if cmd == nil {
		t.Fatal("expected the tick to reschedule itself")
	}
	if len(sched.starts) != 1 || sched.starts[0] != 1200 {
		t.Errorf("starts = %v, want [1200]", sched.starts)
	}
}
