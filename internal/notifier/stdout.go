package notifier

import (
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/eyerest/internal/utils"
)

// Printer is an overlay presenter that writes one line per cue. The daemon
// uses it for --dry-run.
type Printer struct {
	w   io.Writer
	now func() time.Time
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, now: time.Now}
}

func (p *Printer) ShowOverlay(durationSeconds float64) {
	fmt.Fprintf(p.w, "%s  rest cue for %s\n", p.now().Format(time.TimeOnly), utils.FormatCueDuration(durationSeconds))
}
