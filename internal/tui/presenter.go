package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/eyerest/internal/logger"
)

// cuePresenter queues cue requests raised by the controller. The controller
// only runs inside Update, so the model drains the queue right after each
// controller call instead of sending to the program from its own loop.
type cuePresenter struct {
	pending []float64
}

func (p *cuePresenter) ShowOverlay(durationSeconds float64) {
	p.pending = append(p.pending, durationSeconds)
}

func (p *cuePresenter) take() []float64 {
	pending := p.pending
	p.pending = nil
	return pending
}

// dispatchMsg carries a scheduler callback onto the Update goroutine.
type dispatchMsg struct {
	f func()
}

// Bridge hands scheduler callbacks to a running program.
type Bridge struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach sets the program that receives callbacks.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// Dispatch posts f to the program. Callbacks arriving before Attach are dropped.
func (b *Bridge) Dispatch(f func()) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p == nil {
		logger.Warn("tui: dropping timer callback, program not attached")
		return
	}
	p.Send(dispatchMsg{f: f})
}
