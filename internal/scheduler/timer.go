// Package scheduler provides the wall-clock timer behind the reminder
// controller.
package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/eyerest/internal/logger"
)

// MinPeriod is the shortest period a Timer will tick at.
const MinPeriod = time.Millisecond

type registration struct {
	id       uuid.UUID
	period   time.Duration
	nextFire time.Time
	done     chan struct{}
}

// Timer runs one periodic callback on a time.Ticker. Ticks are handed to the
// dispatch function so the host can run them on its own goroutine; a tick is
// dropped if its registration was stopped or replaced before it runs.
//
// Timer is safe for concurrent use.
type Timer struct {
	mu       sync.Mutex
	dispatch func(func())
	now      func() time.Time
	current  *registration
}

// New returns an idle Timer. A nil dispatch runs callbacks on the ticker
// goroutine.
func New(dispatch func(func())) *Timer {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Timer{
		dispatch: dispatch,
		now:      time.Now,
	}
}

// Start replaces any running registration with one that fires onFire every
// periodSeconds.
func (t *Timer) Start(periodSeconds float64, onFire func()) {
	period := toDuration(periodSeconds)

	t.mu.Lock()
	t.stopLocked()
	reg := &registration{
		id:       uuid.New(),
		period:   period,
		nextFire: t.now().Add(period),
		done:     make(chan struct{}),
	}
	t.current = reg
	t.mu.Unlock()

	logger.Debug("timer: started", "id", reg.id, "period", period)
	go t.run(reg, onFire)
}

// Stop cancels the running registration. It is a no-op when idle.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// NextFireDate estimates the next tick of the running registration.
func (t *Timer) NextFireDate() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return time.Time{}, false
	}
	return t.current.nextFire, true
}

func (t *Timer) stopLocked() {
	if t.current == nil {
		return
	}
	close(t.current.done)
	logger.Debug("timer: stopped", "id", t.current.id)
	t.current = nil
}

func (t *Timer) isCurrent(reg *registration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current == reg
}

func (t *Timer) run(reg *registration, onFire func()) {
	ticker := time.NewTicker(reg.period)
	defer ticker.Stop()

	for {
		select {
		case <-reg.done:
			return
		case tick := <-ticker.C:
			t.mu.Lock()
			if t.current != reg {
				t.mu.Unlock()
				return
			}
			reg.nextFire = tick.Add(reg.period)
			t.mu.Unlock()

			t.dispatch(func() {
				if !t.isCurrent(reg) {
					logger.Debug("timer: superseded tick dropped", "id", reg.id)
					return
				}
				onFire()
			})
		}
	}
}

func toDuration(seconds float64) time.Duration {
	d := time.Duration(seconds * float64(time.Second))
	if !(d >= MinPeriod) {
		return MinPeriod
	}
	return d
}
