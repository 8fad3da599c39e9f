package reminder

import "time"

// Phase summarizes what the reminder is doing for display.
type Phase int

const (
	// PhaseDisabled means reminders are switched off in settings.
	PhaseDisabled Phase = iota
	// PhasePending means reminders are on but nothing is ticking, either
	// because the controller is stopped or office hours are closed.
	PhasePending
	// PhaseTicking means the scheduler will fire at Countdown.NextFire.
	PhaseTicking
)

func (p Phase) String() string {
	switch p {
	case PhaseDisabled:
		return "disabled"
	case PhasePending:
		return "pending"
	case PhaseTicking:
		return "ticking"
	default:
		return "unknown"
	}
}

// Countdown is what a UI shows next to the "Next break" label.
type Countdown struct {
	Phase     Phase
	NextFire  time.Time
	Remaining time.Duration
}

// Title is the label for the countdown panel.
func (c Countdown) Title() string {
	if c.Phase == PhaseDisabled {
		return "Reminders disabled"
	}
	return "Next break"
}

// Countdown reports the time until the next firing as seen at now.
func (c *Controller) Countdown(now time.Time) Countdown {
	if !c.settings.Enabled() {
		return Countdown{Phase: PhaseDisabled}
	}
	next, ok := c.NextFireDate()
	if !ok {
		return Countdown{Phase: PhasePending}
	}
	remaining := next.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return Countdown{Phase: PhaseTicking, NextFire: next, Remaining: remaining}
}
