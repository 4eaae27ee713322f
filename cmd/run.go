package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/abhisek/mathtik/internal/app"
	"github.com/abhisek/mathtik/internal/config"
	"github.com/abhisek/mathtik/internal/game"
	"github.com/abhisek/mathtik/internal/logger"
	"github.com/abhisek/mathtik/internal/scheduler"
	"github.com/abhisek/mathtik/internal/store"
	"github.com/spf13/cobra"
)

// logFileName is the TUI log file inside the data directory.
const logFileName = "mathtik.log"

// appEnv is everything a command needs to talk to the learner's data.
type appEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	game   *game.Game

	closers []io.Closer
}

// Close releases the store and log file.
func (r *appEnv) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i].Close()
	}
}

// setup loads config, logging, the store and the game. When logToFile is
// set, logs go to a file so they don't draw over the TUI.
func setup(cmd *cobra.Command, logToFile bool) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logPath := ""
	if logToFile {
		logPath = cfg.Log.File
		if logPath == "" {
			dir, err := store.DataDir()
			if err != nil {
				return nil, fmt.Errorf("resolve data dir: %w", err)
			}
			logPath = filepath.Join(dir, logFileName)
		}
	}
	log, logCloser, err := logger.Setup(cfg.Log.Level, logPath)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	env := &appEnv{cfg: cfg, logger: log, closers: []io.Closer{logCloser}}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	env.store = st
	env.closers = append(env.closers, st)

	g, err := game.New(cmd.Context(), game.Options{
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Scheduler: schedulerConfig(cfg.Scheduler),
		Logger:    log,
	})
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("create game: %w", err)
	}
	env.game = g

	log.Debug("store ready", "db", dbPath)
	return env, nil
}

func schedulerConfig(c config.SchedulerConfig) scheduler.Config {
	return scheduler.Config{
		PriorRatioBase:     c.PriorRatioBase,
		PriorRatioStep:     c.PriorRatioStep,
		PriorRatioMax:      c.PriorRatioMax,
		MultipleChoiceRate: c.MultipleChoiceRate,
	}
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	env, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	return app.Run(env.game, env.store.EventRepo())
}
