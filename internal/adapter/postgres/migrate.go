package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/learning-log/migrations"
)

// OpenMigrator opens a database/sql handle on dsn (goose requires *sql.DB)
// and returns a goose provider over the embedded migrations.
// The caller closes the returned *sql.DB.
func OpenMigrator(ctx context.Context, dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	// NewProvider handles $$-delimited PL/pgSQL bodies, unlike the legacy
	// goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, db, nil
}

// Migrate applies all pending migrations and returns how many were applied.
func Migrate(ctx context.Context, dsn string) (int, error) {
	provider, db, err := OpenMigrator(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}
