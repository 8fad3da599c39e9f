package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/logger"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/notifier"
	"github.com/julianstephens/eyerest/internal/reminder"
	"github.com/julianstephens/eyerest/internal/scheduler"
)

type DaemonCmd struct {
	DryRun  bool          `help:"Print cues to stdout instead of sending them to the tray app."`
	Refresh time.Duration `default:"30s" help:"How often office hours are re-checked."`
}

func (c *DaemonCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	var (
		presenter reminder.OverlayPresenter
		tray      *notifier.Tray
	)
	if c.DryRun {
		presenter = notifier.NewPrinter(os.Stdout)
	} else {
		tray = notifier.NewTray(settings.AccentColor())
		if _, _, err := locateTray(); err != nil {
			logger.Warn("Tray app not reachable, cues will be retried on each firing", "error", err)
		}
		presenter = tray
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	g, gctx := errgroup.WithContext(sigCtx)

	events := make(chan func())
	timer := scheduler.New(func(f func()) {
		select {
		case events <- f:
		case <-gctx.Done():
		}
	})

	d := &daemon{
		store:      ctx.Store,
		controller: reminder.NewController(settings, timer, presenter, reminder.WithLocation(ctx.Loc())),
		events:     events,
		refresh:    c.Refresh,
	}
	if tray != nil {
		d.onReload = tray.SetAccent
	}

	reloads := make(chan struct{})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-hup:
				select {
				case reloads <- struct{}{}:
				case <-gctx.Done():
					return nil
				}
			}
		}
	})
	g.Go(func() error {
		return d.loop(gctx, reloads)
	})

	logger.Info("Daemon started",
		"interval_min", settings.IntervalMinutes(),
		"office_hours", settings.RestrictToOfficeHours(),
		"dry_run", c.DryRun,
		"pid", os.Getpid(),
	)
	err = g.Wait()
	if tray != nil {
		tray.Wait()
	}
	logger.Info("Daemon stopped")
	return err
}

// daemon owns the controller. Every controller call happens on the loop
// goroutine; timer ticks arrive through events.
type daemon struct {
	store      reminder.SettingsStore
	controller *reminder.Controller
	events     <-chan func()
	refresh    time.Duration
	onReload   func(models.AccentColor)
}

func (d *daemon) loop(ctx context.Context, reloads <-chan struct{}) error {
	d.controller.Start()
	defer d.controller.Close()

	refresh := d.refresh
	if refresh <= 0 {
		refresh = constants.DefaultDaemonRefresh
	}
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-d.events:
			f()
		case <-ticker.C:
			d.controller.RefreshSchedule()
		case <-reloads:
			d.reload()
		}
	}
}

// reload re-reads settings from the store. A failed read keeps the running
// settings.
func (d *daemon) reload() {
	settings, err := d.store.LoadSettings()
	if err != nil {
		logger.Error("Failed to reload settings", "error", err)
		return
	}
	if d.onReload != nil {
		d.onReload(settings.AccentColor())
	}
	d.controller.Apply(settings)
	logger.Info("Settings reloaded",
		"enabled", settings.Enabled(),
		"interval_min", settings.IntervalMinutes(),
	)
}
