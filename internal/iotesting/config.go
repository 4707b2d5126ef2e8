// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gnames/pokedb/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	TestDatabaseName = "pokedb_test"

	// TestDatabaseURLEnv points integration tests to an existing
	// PostgreSQL instead of a container.
	TestDatabaseURLEnv = "POKEDB_TEST_DATABASE_URL"

	postgresImage = "postgres:16-alpine"
)

var (
	sharedDSN     string
	sharedDSNOnce sync.Once
	sharedDSNErr  error
)

// GetTestConfig returns a configuration suitable for integration tests.
// Integration tests are skipped in short mode. The database comes from
// POKEDB_TEST_DATABASE_URL when it is set, otherwise a PostgreSQL
// container is started once per test binary and reused by all tests.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for database operations
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires PostgreSQL)")
	}

	sharedDSNOnce.Do(func() {
		if dsn := os.Getenv(TestDatabaseURLEnv); dsn != "" {
			sharedDSN = dsn
			return
		}
		sharedDSN, sharedDSNErr = startPostgres()
	})

	if sharedDSNErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedDSNErr)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseURL(sharedDSN),
		config.OptHomeDir(t.TempDir()),
		config.OptLogDestination("stderr"),
	})
	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	cfg := GetTestConfig(t)
	return &cfg.Database
}

func startPostgres() (string, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       TestDatabaseName,
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		// postgres image restarts once after init scripts
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	if err != nil {
		return "", fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf(
		"postgres://postgres:postgres@%s:%s/%s?sslmode=disable",
		host, port.Port(), TestDatabaseName,
	)
	return dsn, nil
}
