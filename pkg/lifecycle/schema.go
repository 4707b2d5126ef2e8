package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate for schema creation.
type SchemaManager interface {
	// EnsureSchema creates missing relations, columns and indexes.
	// It is idempotent and never drops data.
	EnsureSchema(ctx context.Context) error

	// Reset drops all tables and creates the schema from scratch.
	// It destroys all data and is used only by `create --force`.
	Reset(ctx context.Context) error

	// ReseedTypes truncates the types table, cascading to the
	// pokemon-type links, and inserts the vocabulary in the given order,
	// so that the ids of types follow that order starting from 1.
	ReseedTypes(ctx context.Context, vocabulary []string) error

	// Vacuum reclaims dead rows and refreshes planner statistics
	// of all tables. It cannot run inside a transaction.
	Vacuum(ctx context.Context) error
}
