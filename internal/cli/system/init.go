package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Reset to default settings, deleting an existing database or settings file first."`
	Source string `help:"Database path, YAML file or connection string to copy settings from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized eyerest storage at: %s\n", ctx.Store.GetConfigPath())

	// Stores without a file to delete are reset in place.
	if c.Force && !cli.IsFileBacked(ctx.Store) && c.Source == "" {
		if err := ctx.Store.SaveSettings(storage.Fallback()); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		fmt.Println("Reset settings to defaults.")
	}

	if c.Source != "" {
		fmt.Printf("Copying settings from: %s\n", c.Source)
		if err := c.copySettings(ctx); err != nil {
			return fmt.Errorf("copying settings failed: %w", err)
		}
		fmt.Println("Settings copied successfully!")
	}

	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if !cli.IsFileBacked(ctx.Store) {
		return nil
	}

	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absPath, err := filepath.Abs(path)
		if err == nil {
			path = absPath
		}
		absSource, err := filepath.Abs(c.Source)
		if err == nil && absSource == path {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing storage: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing storage: %w", err)
		}
		fmt.Printf("Deleted existing storage at: %s\n", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to access existing storage: %w", err)
	}
	return nil
}

func (c *InitCmd) copySettings(ctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source: %w", err)
	}
	defer source.Close()

	settings, err := source.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}
	return nil
}
