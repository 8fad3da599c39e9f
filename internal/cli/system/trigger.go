package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/models"
	"github.com/julianstephens/eyerest/internal/notifier"
	"github.com/julianstephens/eyerest/internal/reminder"
	"github.com/julianstephens/eyerest/internal/scheduler"
)

type cueSender interface {
	Send(durationSeconds float64) error
}

// newCueSender is replaced in tests.
var newCueSender = func(accent models.AccentColor) cueSender {
	return notifier.NewTray(accent)
}

// presenterFunc adapts a function to reminder.OverlayPresenter.
type presenterFunc func(durationSeconds float64)

func (f presenterFunc) ShowOverlay(durationSeconds float64) { f(durationSeconds) }

type TriggerCmd struct {
	DryRun bool `help:"Print the cue instead of sending it to the tray app."`
}

func (c *TriggerCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	var (
		presenter reminder.OverlayPresenter
		sendErr   error
	)
	if c.DryRun {
		presenter = notifier.NewPrinter(os.Stdout)
	} else {
		sender := newCueSender(settings.AccentColor())
		presenter = presenterFunc(func(d float64) {
			sendErr = sender.Send(d)
		})
	}

	controller := reminder.NewController(settings, scheduler.New(nil), presenter, reminder.WithLocation(ctx.Loc()))
	defer controller.Close()

	controller.TriggerNow()
	if sendErr != nil {
		return fmt.Errorf("failed to deliver rest cue: %w", sendErr)
	}
	if !c.DryRun {
		fmt.Println("✓ Rest cue sent")
	}
	return nil
}
