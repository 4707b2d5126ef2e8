package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Existing tables are incompatible with the models

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Run <em>pokedb create --force</em> to rebuild the schema`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// ReseedError creates an error for failures of types
// reseeding.
func ReseedError(err error) error {
	msg := `Cannot reseed <em>types</em> table

<em>How to fix:</em>
  1. Run <em>pokedb create</em> to make sure the schema exists
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaReseedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to reseed types: %w", err),
	}
}

// VocabularyError creates an error for invalid type
// vocabulary.
func VocabularyError(name, reason string) error {
	msg := "Invalid type <em>'%s'</em> in vocabulary: %s"
	vars := []any{name, reason}

	return &gn.Error{
		Code: errcode.SchemaReseedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad vocabulary %q: %s", name, reason),
	}
}

// VacuumError creates an error for a failed VACUUM ANALYZE.
func VacuumError(err error) error {
	msg := "Cannot vacuum database tables"

	return &gn.Error{
		Code: errcode.SchemaVacuumError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("vacuum analyze failed: %w", err),
	}
}
