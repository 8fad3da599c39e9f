package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/eyerest/internal/cli"
	"github.com/julianstephens/eyerest/internal/cli/settings"
	"github.com/julianstephens/eyerest/internal/cli/system"
	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/errors"
	"github.com/julianstephens/eyerest/internal/logger"
	"github.com/julianstephens/eyerest/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Settings store: a SQLite path, a .yaml file, or a PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the keyring, ${env_db}, or .pgpass instead." type:"string" env:"EYEREST_CONFIG" default:"${default_config}"`
	Timezone string `help:"IANA timezone used for office hours." env:"EYEREST_TIMEZONE" default:"${default_timezone}"`
	Debug    bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize eyerest storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Run      system.RunCmd        `cmd:"" help:"Launch the interactive reminder." default:"1"`
	Daemon   system.DaemonCmd     `cmd:"" help:"Run reminders in the background and deliver cues to the tray app."`
	Trigger  system.TriggerCmd    `cmd:"" help:"Show a rest cue now."`
	Status   system.StatusCmd     `cmd:"" help:"Show settings and whether a reminder is allowed right now."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage reminder settings."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Show where the connection string is resolved from."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	DebugCmd system.DebugCmd `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("20-20-20 eye rest reminder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":          constants.Version,
			"default_config":   constants.DefaultConfigPath,
			"default_timezone": constants.DefaultTimezone,
			"env_db":           constants.EnvDBConnection,
		},
	)

	command := ctx.Command()

	logDir, err := cli.ExpandPath("~/.config/" + constants.AppName)
	if err != nil {
		errors.Fatalf("cannot resolve log directory: %v", err)
	}
	// The TUI owns the terminal, so debug output goes to the log file only.
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir,
		FileOnly:  command == "run",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		if !strings.HasPrefix(command, "doctor") {
			errors.Fatal(err)
		}
		// doctor reports the bad timezone itself.
		loc = time.Local
	}

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:    store,
		Location: loc,
		Timezone: CLI.Timezone,
	}

	// init creates the store and doctor reports on it; keyring never touches it.
	if !skipsPreload(command) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	errors.Fatal(err)
}

func skipsPreload(command string) bool {
	for _, prefix := range []string{"init", "doctor", "keyring"} {
		if strings.HasPrefix(command, prefix) {
			return true
		}
	}
	return false
}
