// Package reminder decides when the periodic eye-rest reminder should tick.
//
// A Controller owns the current settings and whether the reminder is running,
// and drives a Scheduler and an OverlayPresenter from them. It is not safe for
// concurrent use: hosts call it from a single goroutine, including the
// callbacks the Scheduler fires.
package reminder

import (
	"time"
	"weak"

	"github.com/julianstephens/eyerest/internal/logger"
	"github.com/julianstephens/eyerest/internal/models"
)

// State is a read-only snapshot of the controller.
type State struct {
	Running         bool
	SchedulerActive bool
	// ActivePeriod is the period in seconds handed to the scheduler, nil
	// whenever SchedulerActive is false.
	ActivePeriod *float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now as the controller's source of the current time.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the zone office hours are evaluated in. The default reads
// each instant in its own location.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		c.loc = loc
	}
}

type Controller struct {
	settings  models.Settings
	scheduler Scheduler
	presenter OverlayPresenter
	now       func() time.Time
	loc       *time.Location

	running         bool
	schedulerActive bool
	activePeriod    float64

	// generation identifies the live scheduler registration. Callbacks carry
	// the generation they were registered under and are ignored once it moves.
	generation uint64
	closed     bool
	self       weak.Pointer[Controller]
}

// NewController returns an idle controller. Nothing is scheduled until Start.
func NewController(settings models.Settings, scheduler Scheduler, presenter OverlayPresenter, opts ...Option) *Controller {
	c := &Controller{
		settings:  settings.Normalized(),
		scheduler: scheduler,
		presenter: presenter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.self = weak.Make(c)
	return c
}

// Start arms the reminder and re-evaluates the schedule unconditionally.
func (c *Controller) Start() {
	if c.closed {
		logger.Debug("reminder: start ignored on closed controller")
		return
	}
	c.running = true
	c.reschedule(c.now(), true)
}

// Stop disarms the reminder and stops the scheduler.
func (c *Controller) Stop() {
	c.scheduler.Stop()
	c.running = false
	c.clearActive()
	logger.Debug("reminder: stopped")
}

// Apply replaces the settings. A running controller re-evaluates the schedule
// unconditionally.
func (c *Controller) Apply(settings models.Settings) {
	c.settings = settings.Normalized()
	logger.Debug("reminder: settings applied",
		"enabled", c.settings.Enabled(),
		"interval_min", c.settings.IntervalMinutes(),
		"cue_s", c.settings.CueDurationSeconds(),
		"office_hours", c.settings.RestrictToOfficeHours(),
	)
	if c.running && !c.closed {
		c.reschedule(c.now(), true)
	}
}

// RefreshSchedule re-evaluates the schedule at the current time. Hosts call
// it periodically so office-hours boundaries take effect.
func (c *Controller) RefreshSchedule() {
	c.RefreshScheduleAt(c.now())
}

// RefreshScheduleAt re-evaluates the schedule as if the time were t. It only
// touches the scheduler when the decision changed.
func (c *Controller) RefreshScheduleAt(t time.Time) {
	if !c.running || c.closed {
		return
	}
	c.reschedule(t, false)
}

// TriggerNow shows the cue immediately, regardless of settings or state.
func (c *Controller) TriggerNow() {
	c.presenter.ShowOverlay(c.settings.CueDuration())
}

// Settings returns the current normalized settings.
func (c *Controller) Settings() models.Settings {
	return c.settings
}

// State returns a snapshot of the activation state.
func (c *Controller) State() State {
	st := State{Running: c.running, SchedulerActive: c.schedulerActive}
	if c.schedulerActive {
		period := c.activePeriod
		st.ActivePeriod = &period
	}
	return st
}

// NextOfficeHoursStart reports when the office-hours window next opens,
// measured from the controller's clock.
func (c *Controller) NextOfficeHoursStart() (time.Time, bool) {
	return c.settings.NextOfficeHoursStart(c.now(), c.loc)
}

// NextFireDate reports the scheduler's next firing while a reminder is ticking.
func (c *Controller) NextFireDate() (time.Time, bool) {
	if !c.schedulerActive {
		return time.Time{}, false
	}
	return c.scheduler.NextFireDate()
}

// Close stops the controller for good. Callbacks still held by the scheduler
// become no-ops.
func (c *Controller) Close() {
	c.Stop()
	c.closed = true
}

func (c *Controller) reschedule(now time.Time, force bool) {
	shouldSchedule := c.settings.Enabled() && c.settings.IsReminderAllowed(now, c.loc)
	interval := c.settings.IntervalSeconds()

	var active *float64
	if c.schedulerActive {
		active = &c.activePeriod
	}
	if !NeedsReschedule(Decision{
		Force:           force,
		ShouldSchedule:  shouldSchedule,
		SchedulerActive: c.schedulerActive,
		ActivePeriod:    active,
		IntervalSeconds: interval,
	}) {
		return
	}

	c.scheduler.Stop()
	c.clearActive()

	if !shouldSchedule {
		logger.Debug("reminder: inactive", "enabled", c.settings.Enabled(), "at", now.Format(time.Kitchen))
		return
	}

	c.scheduler.Start(interval, c.callback(c.generation))
	c.schedulerActive = true
	c.activePeriod = interval
	logger.Debug("reminder: scheduled", "period_s", interval, "generation", c.generation)
}

func (c *Controller) clearActive() {
	c.schedulerActive = false
	c.activePeriod = 0
	c.generation++
}

// callback must not capture c; the scheduler may outlive the controller.
func (c *Controller) callback(generation uint64) func() {
	self := c.self
	return func() {
		ctrl := self.Value()
		if ctrl == nil {
			return
		}
		ctrl.fire(generation)
	}
}

func (c *Controller) fire(generation uint64) {
	if c.closed || !c.schedulerActive || generation != c.generation {
		logger.Debug("reminder: stale firing dropped", "generation", generation, "current", c.generation)
		return
	}
	c.presenter.ShowOverlay(c.settings.CueDuration())
}
