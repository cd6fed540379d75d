// Package app wires configuration, adapters, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/styleforge/backend/internal/adapter/postgres"
	styleRepo "github.com/styleforge/backend/internal/adapter/postgres/style"
	redisadapter "github.com/styleforge/backend/internal/adapter/redis"
	"github.com/styleforge/backend/internal/config"
	"github.com/styleforge/backend/internal/ingest"
	"github.com/styleforge/backend/internal/ingest/align"
	"github.com/styleforge/backend/internal/service/curation"
	stylesvc "github.com/styleforge/backend/internal/service/style"
	"github.com/styleforge/backend/internal/transport/middleware"
	"github.com/styleforge/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the services and HTTP
// transport, and serves until ctx is cancelled. Shutdown is graceful within
// the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	repo := styleRepo.New(pool, logger)
	txManager := postgres.NewTxManager(pool)
	pipeline := ingest.New(logger, align.Positional{}, ingest.Config{
		MergeDuplicates:    cfg.Pipeline.MergeDuplicates,
		MaxConcurrentReads: cfg.Pipeline.MaxConcurrentReads,
	})

	var (
		styleService    *stylesvc.Service
		curationService *curation.Service
		healthHandler   *rest.HealthHandler
	)
	if cfg.Redis.URL != "" {
		cache, err := redisadapter.New(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer cache.Close() //nolint:errcheck

		styleService = stylesvc.NewService(logger, repo, cache, pipeline)
		curationService = curation.NewService(logger, repo, cache, txManager)
		healthHandler = rest.NewHealthHandler(pool, cache, BuildVersion())
	} else {
		logger.Info("redis disabled, language pair lookups always hit the database")
		styleService = stylesvc.NewService(logger, repo, stylesvc.NopCache{}, pipeline)
		curationService = curation.NewService(logger, repo, stylesvc.NopCache{}, txManager)
		healthHandler = rest.NewHealthHandler(pool, nil, BuildVersion())
	}

	router := rest.NewRouter(
		rest.NewStyleHandler(styleService, cfg.Pipeline.MaxUploadBytes, logger),
		rest.NewCurationHandler(curationService, logger),
		healthHandler,
	)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Curator,
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
