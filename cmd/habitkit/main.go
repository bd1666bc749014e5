package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ksolberg/habitkit/internal/cli"
	"github.com/ksolberg/habitkit/internal/cli/backups"
	"github.com/ksolberg/habitkit/internal/cli/groups"
	"github.com/ksolberg/habitkit/internal/cli/habits"
	"github.com/ksolberg/habitkit/internal/cli/rewards"
	"github.com/ksolberg/habitkit/internal/cli/settings"
	"github.com/ksolberg/habitkit/internal/cli/stats"
	"github.com/ksolberg/habitkit/internal/cli/system"
	"github.com/ksolberg/habitkit/internal/constants"
	apperrors "github.com/ksolberg/habitkit/internal/errors"
	"github.com/ksolberg/habitkit/internal/logger"
	"github.com/ksolberg/habitkit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the JSON store, anything else SQLite." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize habitkit storage."`
	Reset    system.ResetCmd      `cmd:"" help:"Reset the store to its default contents."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit    habits.HabitCmd      `cmd:"" help:"Manage habits and completions."`
	Group    groups.GroupCmd      `cmd:"" help:"Manage habit groups."`
	Reward   rewards.RewardCmd    `cmd:"" help:"Manage streak rewards."`
	Stats    stats.StatsCmd       `cmd:"" help:"Show progress statistics."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, groups and rewards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.EqualFold(filepath.Ext(CLI.Config), ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Init handles its own setup; everything else needs a loaded store.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	apperrors.Fatal(err)
}
