package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/notifier"
	"github.com/julianstephens/eyerest/internal/storage"
	"github.com/julianstephens/eyerest/internal/utils"
	"github.com/julianstephens/eyerest/internal/validation"
)

// ErrChecksFailed is returned when at least one diagnostic failed.
var ErrChecksFailed = errors.New("one or more health checks failed")

// locateTray is replaced in tests.
var locateTray = notifier.Locate

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	reachable := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		reachable = true
	}

	// Check 2: schema version, for stores that have one
	if !reachable {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	} else if migrator, ok := ctx.Store.(storage.Migrator); !ok {
		fmt.Printf("⊘ Schema version: SKIPPED (no schema)\n")
	} else if err := checkSchemaVersion(migrator); err != nil {
		fmt.Printf("❌ Schema version: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Schema version: OK\n")
	}

	// Check 3: settings readable
	if reachable {
		settings, err := ctx.Store.LoadSettings()
		if err != nil {
			fmt.Printf("❌ Settings readable: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings readable: OK\n")
			result := validation.CheckSettings(settings)
			for _, n := range result.Notices {
				fmt.Printf("   ℹ %s\n", n.Description)
			}
		}
	} else {
		fmt.Printf("⊘ Settings readable: SKIPPED (storage not reachable)\n")
	}

	// Check 4: timezone
	if !utils.ValidateTimezone(ctx.Timezone) {
		fmt.Printf("❌ Timezone: FAIL\n")
		fmt.Printf("   Error: unknown timezone %q\n", ctx.Timezone)
		hasError = true
	} else {
		fmt.Printf("✓ Timezone: OK (%s)\n", ctx.Loc())
	}

	// Check 5: clock sanity
	if err := checkClock(time.Now()); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 6: tray companion (warning only)
	if _, _, err := locateTray(); err != nil {
		fmt.Printf("⚠ Tray companion: WARNING\n")
		fmt.Printf("   %v\n", err)
		fmt.Printf("   The daemon and trigger commands need it; 'eyerest run' does not.\n")
	} else {
		fmt.Printf("✓ Tray companion: OK\n")
	}

	fmt.Println()
	if hasError {
		return ErrChecksFailed
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSchemaVersion(m storage.Migrator) error {
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	switch {
	case current > latest:
		return fmt.Errorf("schema version %d is newer than this binary supports (%d); upgrade eyerest", current, latest)
	case current < latest:
		return fmt.Errorf("%d pending migration(s); run 'eyerest migrate'", latest-current)
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
