// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/gnames/pokedb/pkg/lifecycle"
	"github.com/gnames/pokedb/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// EnsureSchema creates missing tables, columns and indexes
// with GORM AutoMigrate. Existing data is kept.
func (m *manager) EnsureSchema(ctx context.Context) error {
	gormDB, err := m.gormDB(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Schema is ready", "tables", schema.TableNames())
	return nil
}

// Reset drops every table of the public schema and creates
// the schema again.
func (m *manager) Reset(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}
	if err := m.operator.DropAllTables(ctx); err != nil {
		return err
	}
	slog.Warn("All tables dropped")
	return m.EnsureSchema(ctx)
}

// ReseedTypes empties the types table together with pokemon-type
// links and inserts the vocabulary in order. Identity restarts, so
// the first type gets id 1. All of it happens in one transaction.
func (m *manager) ReseedTypes(
	ctx context.Context,
	vocabulary []string,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	names, err := cleanVocabulary(vocabulary)
	if err != nil {
		return err
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, truncateTypesSQL()); err != nil {
			return err
		}
		for _, v := range names {
			if _, err := tx.Exec(ctx, insertTypeSQL, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ReseedError(err)
	}

	slog.Info("Types reseeded", "count", len(names))
	return nil
}

// Vacuum runs VACUUM ANALYZE on pokedb tables. Every upsert of an
// existing pokemon leaves a dead row version behind.
func (m *manager) Vacuum(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	slog.Info("Running VACUUM ANALYZE...")
	timeStart := time.Now()

	tables := schema.TableNames()
	for i := range tables {
		tables[i] = pgx.Identifier{tables[i]}.Sanitize()
	}
	_, err := pool.Exec(ctx, "VACUUM ANALYZE "+strings.Join(tables, ", "))
	if err != nil {
		return VacuumError(err)
	}

	elapsed := time.Since(timeStart)
	slog.Info("VACUUM ANALYZE completed",
		"duration", gnfmt.TimeString(elapsed.Seconds()))
	return nil
}

func (m *manager) gormDB(ctx context.Context) (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}
