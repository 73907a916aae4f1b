package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/julianstephens/stillday/internal/app"
	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/config"
	"github.com/julianstephens/stillday/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data path (.db for SQLite, otherwise a directory of JSON slots)." type:"path" default:"${data_path}"`
	LogFile string `help:"Log file path." type:"path" default:"${log_path}"`

	Tui  cli.TuiCmd `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Plan struct {
		Add    cli.PlanAddCmd    `cmd:"" help:"Add a plan for today."`
		List   cli.PlanListCmd   `cmd:"" help:"List today's plans."`
		Toggle cli.PlanToggleCmd `cmd:"" help:"Toggle a plan done/not done."`
		Delete cli.PlanDeleteCmd `cmd:"" help:"Delete a plan."`
	} `cmd:"" help:"Manage the daily planner."`
	Board struct {
		Add    cli.BoardAddCmd    `cmd:"" help:"Add a card to the board."`
		List   cli.BoardListCmd   `cmd:"" help:"Show the board."`
		Move   cli.BoardMoveCmd   `cmd:"" help:"Move a card between columns."`
		Delete cli.BoardDeleteCmd `cmd:"" help:"Delete a card."`
	} `cmd:"" help:"Manage the task board."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits."`
		Check  cli.HabitCheckCmd  `cmd:"" help:"Toggle a habit's check-in."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Log cli.LogCmd `cmd:"" help:"Show the achievements timeline."`

	Welcome struct {
		Sample  cli.WelcomeSampleCmd  `cmd:"" help:"Load the sample data set (first run only)."`
		Dismiss cli.WelcomeDismissCmd `cmd:"" help:"Start blank."`
	} `cmd:"" help:"First-run onboarding."`
}

func main() {
	cfg := config.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("stillday"),
		kong.Description("Local-first daily planner, task board, and habit tracker"),
		kong.UsageOnError(),
		kong.Vars{
			"version":   "v0.1.0",
			"data_path": cfg.DataPath,
			"log_path":  cfg.LogPath,
		},
	)

	logger := newLogger(CLI.LogFile)

	medium, err := openMedium(CLI.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := storage.New(medium, logger)
	store.Load()
	defer store.Close()

	appCtx := &cli.Context{
		App: app.New(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openMedium picks the persistence transport by path shape, the same way
// the data flag documents it: a .db path opens SQLite, anything else is
// treated as a directory of per-slot JSON files.
func openMedium(path string) (storage.Medium, error) {
	if strings.HasSuffix(path, ".db") {
		return storage.NewSQLiteMedium(path)
	}
	return storage.NewFileMedium(path), nil
}

// newLogger writes to the log file when it can be opened and is silent
// otherwise; logging must never get in the way of the app.
func newLogger(path string) zerolog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return zerolog.Nop()
	}

	filePerms := 0o600
	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	}).With().Timestamp().Logger()
}
