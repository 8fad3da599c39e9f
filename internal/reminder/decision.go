package reminder

// Decision is the input to NeedsReschedule.
type Decision struct {
	// Force re-arms the scheduler even when nothing changed, as Start and
	// Apply do.
	Force           bool
	ShouldSchedule  bool
	SchedulerActive bool
	// ActivePeriod is the period in seconds the scheduler currently runs
	// with, nil when inactive.
	ActivePeriod    *float64
	IntervalSeconds float64
}

// NeedsReschedule reports whether the scheduler must be stopped and, if
// reminders should run, started again.
func NeedsReschedule(d Decision) bool {
	if d.Force {
		return true
	}
	if d.ShouldSchedule != d.SchedulerActive {
		return true
	}
	if d.ShouldSchedule && (d.ActivePeriod == nil || *d.ActivePeriod != d.IntervalSeconds) {
		return true
	}
	return false
}
