package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/utsav/internal/calendar"
	"github.com/alexanderramin/utsav/internal/cli"
	"github.com/alexanderramin/utsav/internal/config"
	"github.com/alexanderramin/utsav/internal/db"
	"github.com/alexanderramin/utsav/internal/repository"
	"github.com/alexanderramin/utsav/internal/service"
	"github.com/alexanderramin/utsav/internal/session"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	sessionID := uuid.New().String()
	ctx := service.WithSessionID(context.Background(), sessionID)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	favoriteRepo := repository.NewSQLiteFavoriteRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	catalogSvc := service.NewCatalogService(cfg.CatalogPath, logger, observer)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, uow, observer)

	cat, _, err := catalogSvc.Load(ctx)
	if err != nil {
		return err
	}

	// Stale ids stay in storage until "utsav fav prune".
	favs, stale, err := favoriteSvc.Load(ctx, cat)
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		logger.WarnContext(ctx, "favorites not in catalog", "count", len(stale), "ids", stale)
	}

	sess := session.New(cat,
		session.WithID(sessionID),
		session.WithClock(calendar.NewClock(cfg.Location)),
		session.WithFavorites(favs),
	)

	app := &cli.App{
		Session:       sess,
		Favorites:     favoriteSvc,
		UpcomingLimit: cfg.UpcomingLimit,
	}

	// Bare "utsav" opens the TUI only when attached to a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
