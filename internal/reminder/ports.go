package reminder

import (
	"time"

	"github.com/julianstephens/eyerest/internal/models"
)

// Scheduler runs a single periodic callback. Starting again replaces the
// previous registration.
type Scheduler interface {
	Start(periodSeconds float64, onFire func())
	Stop()
	// NextFireDate reports the next expected firing, or false when idle.
	NextFireDate() (time.Time, bool)
}

// OverlayPresenter shows the rest cue for the given number of seconds.
type OverlayPresenter interface {
	ShowOverlay(durationSeconds float64)
}

// SettingsStore persists settings between runs. The controller never calls it;
// hosts load before constructing a Controller and save before Apply.
type SettingsStore interface {
	LoadSettings() (models.Settings, error)
	SaveSettings(models.Settings) error
}
