// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate up|down|status
//
// The database comes from the regular configuration (CONFIG_PATH or
// DATABASE_DSN).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
	"github.com/heartmarshall/learning-log/internal/app"
	"github.com/heartmarshall/learning-log/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	provider, db, err := postgres.OpenMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := run(ctx, provider, flag.Arg(0), logger); err != nil {
		logger.Error("migrate failed", slog.String("command", flag.Arg(0)), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, p *goose.Provider, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		results, err := p.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("applied", slog.Int64("version", r.Source.Version), slog.Duration("duration", r.Duration))
		}
		logger.Info("up to date", slog.Int("applied", len(results)))
	case "down":
		r, err := p.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("rolled back", slog.Int64("version", r.Source.Version), slog.Duration("duration", r.Duration))
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-8s  %s\n", s.Source.Version, s.State, applied)
		}
	default:
		usage()
	}
	return nil
}
