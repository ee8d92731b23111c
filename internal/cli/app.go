// Package cli implements the interactive surface of taskdeck: a small REPL
// driving the session, task and statistics services. It stands in for the
// mobile UI the services were designed under.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmarkov/taskdeck/internal/config"
	"github.com/dmarkov/taskdeck/internal/logging"
	"github.com/dmarkov/taskdeck/internal/repositories/kv"
	"github.com/dmarkov/taskdeck/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	tasks  services.TaskService
	stats  services.StatsService
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp opens the local database, wires the services and restores the
// persisted session (reloading that user's task partition).
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := kv.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	repo := kv.NewSQLiteRepository(db)

	statsService := services.NewStatsService(repo, logger, cfg.StatsWindow())
	authService := services.NewAuthService(ctx, repo, statsService, logger)
	taskService := services.NewTaskService(repo, logger)

	app := &App{
		config: cfg,
		auth:   authService,
		tasks:  taskService,
		stats:  statsService,
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
	}

	userID := ""
	if u := authService.CurrentUser(); u != nil {
		userID = u.ID
	}
	if err := taskService.Load(ctx, userID); err != nil {
		logger.Warn(ctx, "failed to load task partition", "error", err)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

func (a *App) status() string {
	if u := a.auth.CurrentUser(); u != nil {
		return u.Name
	}
	return "logged out"
}
