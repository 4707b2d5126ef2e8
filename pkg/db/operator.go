package db

import (
	"context"

	"github.com/gnames/pokedb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It owns the connection lifecycle and exposes the pgxpool.Pool so that
// lifecycle components (SchemaManager, Upserter, DatasetBuilder) can run
// their own SQL.
type Operator interface {
	// Connect establishes a connection to the database.
	// The pool holds a single live connection for the whole run.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// Ping verifies that the connection is still alive.
	Ping(ctx context.Context) error

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}
