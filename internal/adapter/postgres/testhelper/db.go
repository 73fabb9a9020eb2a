// Package testhelper provides a shared PostgreSQL container and seed helpers
// for integration tests of the postgres adapters.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/learning-log/internal/adapter/postgres"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once per test binary),
// applies the embedded goose migrations, and returns a new pgxpool.Pool
// connected to it. The pool is closed via t.Cleanup; the container lives
// until the process exits. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: integration test skipped in short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

// DSN returns the connection string of the shared container.
// SetupTestDB must have been called first.
func DSN(t *testing.T) string {
	t.Helper()
	if sharedDSN == "" {
		t.Fatal("testhelper: DSN called before SetupTestDB")
	}
	return sharedDSN
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	if _, err := postgres.Migrate(ctx, dsn); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}
