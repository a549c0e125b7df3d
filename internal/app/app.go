// Package app provides the application bootstrap and runtime wiring.
//
// The App type builds the cache store (Postgres or flat file, by config),
// the TMDB catalog client, the recommendation service, and the Telegram bot,
// and exposes methods to run them.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lueurxax/movie-night-bot/internal/catalog"
	"github.com/lueurxax/movie-night-bot/internal/chart"
	"github.com/lueurxax/movie-night-bot/internal/platform/config"
	"github.com/lueurxax/movie-night-bot/internal/platform/observability"
	"github.com/lueurxax/movie-night-bot/internal/recommend"
	"github.com/lueurxax/movie-night-bot/internal/storage"
	"github.com/lueurxax/movie-night-bot/internal/telegrambot"
)

const errBotInit = "bot initialization failed: %w"

// App holds the application dependencies.
type App struct {
	cfg    *config.Config
	logger *zerolog.Logger

	pgStore *storage.PostgresStore
}

// New creates a new App instance.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Setup connects the cache store, running migrations when the store is
// Postgres. It must be called before RunBot or StartHealthServer.
func (a *App) Setup(ctx context.Context) error {
	if a.cfg.PostgresDSN == "" {
		return nil
	}

	store, err := storage.NewPostgresStore(ctx, a.cfg.PostgresDSN, a.logger)
	if err != nil {
		return fmt.Errorf("connect cache store: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()

		return fmt.Errorf("migrate cache store: %w", err)
	}

	a.pgStore = store

	return nil
}

// Close releases store connections.
func (a *App) Close() {
	if a.pgStore != nil {
		a.pgStore.Close()
	}
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	var pinger observability.Pinger
	if a.pgStore != nil {
		pinger = a.pgStore
	}

	srv := observability.NewServer(pinger, a.cfg.HealthPort, a.logger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("health server start: %w", err)
	}

	return nil
}

// RunBot runs the Telegram bot until the context is cancelled.
func (a *App) RunBot(ctx context.Context) error {
	a.logger.Info().Msg("starting bot mode")

	bot, err := telegrambot.New(a.cfg, a.newService(), chart.NewRenderer(), a.logger)
	if err != nil {
		return fmt.Errorf(errBotInit, err)
	}

	return bot.Run(ctx)
}

func (a *App) newService() *recommend.Service {
	client := catalog.NewClient(a.cfg.TMDBAPIKey, a.cfg.TMDBBaseURL, a.cfg.TMDBTimeout, a.cfg.DetailRPS)
	fetcher := recommend.NewFetcher(client, a.cfg.MaxPages, a.cfg.MaxCandidates, a.logger)

	return recommend.NewService(fetcher, a.cacheStore(), a.cfg.MinPollOptions, a.cfg.FallbackMonths, a.logger)
}

func (a *App) cacheStore() storage.MovieCache {
	if a.pgStore != nil {
		return a.pgStore
	}

	return storage.NewFileStore(a.cfg.CacheFile)
}
