package reminder

import (
	"time"

	"github.com/julianstephens/eyerest/internal/models"
)

type recordingScheduler struct {
	startIntervals []float64
	stopCallCount  int
	handlers       []func()
	active         bool
}

func (s *recordingScheduler) Start(periodSeconds float64, onFire func()) {
	s.startIntervals = append(s.startIntervals, periodSeconds)
	s.handlers = append(s.handlers, onFire)
	s.active = true
}

func (s *recordingScheduler) Stop() {
	s.stopCallCount++
	s.active = false
}

func (s *recordingScheduler) NextFireDate() (time.Time, bool) {
	if !s.active {
		return time.Time{}, false
	}
	return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC), true
}

// fire invokes the most recently registered callback.
func (s *recordingScheduler) fire() {
	if len(s.handlers) == 0 {
		return
	}
	s.handlers[len(s.handlers)-1]()
}

type recordingPresenter struct {
	shown []float64
}

func (p *recordingPresenter) ShowOverlay(durationSeconds float64) {
	p.shown = append(p.shown, durationSeconds)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func at(hour, minute int) time.Time {
	return time.Date(2026, time.January, 15, hour, minute, 0, 0, time.UTC)
}

func reminderSettings(edit func(*models.RawSettings)) models.Settings {
	raw := models.RawSettings{
		Enabled:                 true,
		IntervalMinutes:         20,
		CueDurationSeconds:      6,
		AccentColor:             models.AccentRed,
		OfficeHoursStartMinutes: 9 * 60,
		OfficeHoursEndMinutes:   17 * 60,
	}
	if edit != nil {
		edit(&raw)
	}
	return models.NewSettings(raw)
}

func newTestController(settings models.Settings, clock *fakeClock) (*Controller, *recordingScheduler, *recordingPresenter) {
	sched := &recordingScheduler{}
	presenter := &recordingPresenter{}
	c := NewController(settings, sched, presenter, WithClock(clock.now), WithLocation(time.UTC))
	return c, sched, presenter
}
