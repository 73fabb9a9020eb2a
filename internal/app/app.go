package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	pgsession "github.com/heartmarshall/learning-log/internal/adapter/postgres/session"
	"github.com/heartmarshall/learning-log/internal/adapter/redis"
	"github.com/heartmarshall/learning-log/internal/config"
	"github.com/heartmarshall/learning-log/internal/transport/middleware"
	"github.com/heartmarshall/learning-log/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, builds the HTTP stack and serves until ctx is cancelled,
// then shuts the server down within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("session_store", cfg.Session.Store),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	checks := []rest.Check{{Name: "database", Ping: pool.Ping}}

	sessions, err := openSessionStore(ctx, cfg.Session, pool, &checks)
	if err != nil {
		return err
	}
	defer sessions.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst, limiterCleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(Deps{
		Config:   cfg,
		Logger:   logger,
		DB:       pool,
		Sessions: sessions.store,
		Checks:   checks,
		Registry: reg,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

type sessionBackend struct {
	store SessionStore
	close func()
}

// openSessionStore picks the configured session backend and appends its
// health check when it is not the main database.
func openSessionStore(ctx context.Context, cfg config.SessionConfig, pool *pgxpool.Pool, checks *[]rest.Check) (sessionBackend, error) {
	switch cfg.Store {
	case config.SessionStoreRedis:
		client, err := redis.NewClient(ctx, cfg)
		if err != nil {
			return sessionBackend{}, err
		}
		*checks = append(*checks, rest.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		return sessionBackend{
			store: redis.NewSessionStore(client),
			close: func() { _ = client.Close() },
		}, nil
	default:
		return sessionBackend{store: pgsession.New(pool), close: func() {}}, nil
	}
}
