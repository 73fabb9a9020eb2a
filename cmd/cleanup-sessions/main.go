// Command cleanup-sessions deletes expired login sessions from PostgreSQL.
// It is intended to be invoked by an external cron job. Redis-backed
// sessions expire on their own, so with SESSION_STORE=redis it does nothing.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	"github.com/heartmarshall/learning-log/internal/adapter/postgres/session"
	"github.com/heartmarshall/learning-log/internal/adapter/postgres/user"
	"github.com/heartmarshall/learning-log/internal/app"
	"github.com/heartmarshall/learning-log/internal/auth"
	"github.com/heartmarshall/learning-log/internal/config"
	authsvc "github.com/heartmarshall/learning-log/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Session.Store != config.SessionStorePostgres {
		logger.Info("session store expires sessions itself, nothing to do",
			slog.String("session_store", cfg.Session.Store),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	authService := authsvc.NewService(
		logger,
		user.New(pool),
		session.New(pool),
		auth.NewJWTManager(cfg.Auth.SessionSecret, cfg.Auth.Issuer),
		cfg.Auth,
	)

	deleted, err := authService.CleanupExpiredSessions(ctx)
	if err != nil {
		logger.Error("session cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("session cleanup completed", slog.Int("deleted", deleted))
}
