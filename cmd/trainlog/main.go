package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/trainlog/internal/blob"
	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/constants"
	apperrors "github.com/julianstephens/trainlog/internal/errors"
	"github.com/julianstephens/trainlog/internal/keyring"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/remote"
	"github.com/julianstephens/trainlog/internal/remote/postgres"
	"github.com/julianstephens/trainlog/internal/remote/sqlite"
	"github.com/julianstephens/trainlog/internal/repository"
	"github.com/julianstephens/trainlog/internal/schedule"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr."`
	Data    string `help:"Data directory for local caches and logs." type:"string" default:"${data_dir}"`
	Store   string `help:"Entry store: a PostgreSQL connection string or a SQLite file path. Defaults to the keyring connection string, then a local SQLite file." type:"string"`
	User    string `help:"Owner id entries are scoped to." default:"${owner}"`

	Configure cli.ConfigureCmd `cmd:"" help:"Store secrets in the OS keyring."`
	Log       cli.LogCmd       `cmd:"" help:"Log a training entry."`
	History   cli.HistoryCmd   `cmd:"" help:"Show logged entries, newest first."`
	Delete    cli.DeleteCmd    `cmd:"" help:"Delete a logged entry."`
	Profile   struct {
		Set  cli.ProfileSetCmd  `cmd:"" help:"Set athlete profile fields."`
		Show cli.ProfileShowCmd `cmd:"" help:"Show the athlete profile." default:"1"`
	} `cmd:"" help:"Manage the athlete profile used by the plan generator."`
	Generate struct {
		Workout  cli.GenerateWorkoutCmd  `cmd:"" help:"Generate a single workout."`
		Schedule cli.GenerateScheduleCmd `cmd:"" help:"Generate a multi-day schedule."`
	} `cmd:"" help:"Generate workouts and schedules."`
	Workout struct {
		Show cli.WorkoutShowCmd `cmd:"" help:"Show the last generated workout." default:"1"`
	} `cmd:"" help:"Work with the last generated workout."`
	Schedule struct {
		Show     cli.ScheduleShowCmd     `cmd:"" help:"Show the cached schedule." default:"1"`
		Complete cli.ScheduleCompleteCmd `cmd:"" help:"Mark a schedule day as done."`
		Toggle   cli.ScheduleToggleCmd   `cmd:"" help:"Toggle a schedule day's completion."`
		Remove   cli.ScheduleRemoveCmd   `cmd:"" help:"Remove a day from the schedule."`
		Clear    cli.ScheduleClearCmd    `cmd:"" help:"Clear the entire schedule."`
		Import   cli.ScheduleImportCmd   `cmd:"" help:"Log a schedule day as a training entry."`
	} `cmd:"" help:"Work with the cached schedule."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Training log and workout planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":  constants.Version,
			"data_dir": constants.DefaultDataDir,
			"owner":    constants.DefaultOwner,
		},
	)

	dataDir := expandHome(CLI.Data)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		apperrors.Fatal(err)
	}

	store, err := selectStore(CLI.Store, dataDir)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	session := models.Session{UserID: CLI.User}
	blobs := blob.NewFileStorage(dataDir)

	appCtx := &cli.Context{
		Session: session,
		Store:   store,
		Repo:    repository.New(session, store),
		Cache:   schedule.NewCache(blobs),
		Blobs:   blobs,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// selectStore picks the entry store backend. An explicit --store wins; a
// postgres:// prefix means PostgreSQL, anything else is treated as a SQLite
// path. Without the flag, a connection string in the OS keyring selects
// PostgreSQL, and the fallback is a SQLite file in the data directory.
func selectStore(flag, dataDir string) (remote.Store, error) {
	if flag != "" {
		if isPostgres(flag) {
			return postgres.New(flag), nil
		}
		return sqlite.New(expandHome(flag)), nil
	}

	connStr, err := keyring.GetConnectionString()
	if err == nil && isPostgres(connStr) {
		return postgres.New(connStr), nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrKeyringUnavailable) {
		return nil, err
	}

	return sqlite.New(filepath.Join(dataDir, constants.AppName+".db")), nil
}

func isPostgres(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
