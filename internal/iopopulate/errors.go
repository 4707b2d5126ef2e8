package iopopulate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/errcode"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// RangeError creates an error for an invalid id range.
func RangeError(first, last int) error {
	msg := `Invalid id range <em>%d..%d</em>

<em>How to fix:</em>
  Use positive ids with --first not greater than --last`

	vars := []any{first, last}

	return &gn.Error{
		Code: errcode.PopulateRangeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid id range %d..%d", first, last),
	}
}

// UpsertPokemonError creates an error for a failed write of
// a pokemon row.
func UpsertPokemonError(pokedexNumber int, err error) error {
	msg := "Cannot store pokemon <em>%d</em>"
	vars := []any{pokedexNumber}

	return &gn.Error{
		Code: errcode.UpsertPokemonError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("upsert of pokemon %d failed: %w",
			pokedexNumber, err),
	}
}

// UpsertTypeError creates an error for a failed lookup or
// insert of a type.
func UpsertTypeError(name string, err error) error {
	msg := "Cannot store type <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.UpsertTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("upsert of type %q failed: %w", name, err),
	}
}

// UpsertAbilityError creates an error for a failed lookup or
// insert of an ability.
func UpsertAbilityError(name string, err error) error {
	msg := "Cannot store ability <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.UpsertAbilityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("upsert of ability %q failed: %w", name, err),
	}
}

// UpsertLinkError creates an error for a failed insert into
// a junction table.
func UpsertLinkError(
	pokedexNumber int,
	kind, name string,
	err error,
) error {
	msg := "Cannot link pokemon <em>%d</em> to %s <em>%s</em>"
	vars := []any{pokedexNumber, kind, name}

	return &gn.Error{
		Code: errcode.UpsertLinkError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("link of pokemon %d to %s %q failed: %w",
			pokedexNumber, kind, name, err),
	}
}

// LinkTransactionError creates an error for a transaction of
// links that could not start or commit.
func LinkTransactionError(pokedexNumber int, err error) error {
	msg := "Cannot store links of pokemon <em>%d</em>"
	vars := []any{pokedexNumber}

	return &gn.Error{
		Code: errcode.UpsertLinkError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("link transaction of pokemon %d failed: %w",
			pokedexNumber, err),
	}
}

// AllFailedError creates an error for a run where no id was
// stored.
func AllFailedError(total int) error {
	msg := `None of <em>%d</em> catalog entries were stored

<em>Possible causes:</em>
  - The catalog API is unreachable
  - The schema is missing, run <em>pokedb create</em>

<em>How to fix:</em>
  Check the log file for per-id errors`

	vars := []any{total}

	return &gn.Error{
		Code: errcode.PopulateAllFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all %d entries failed", total),
	}
}

// ConnectionLostError creates an error for a run stopped
// because the database does not respond.
func ConnectionLostError(id int, err error) error {
	msg := `Lost database connection at id <em>%d</em>

Ingestion is idempotent, rerun with <em>--first %d</em> to continue.`
	vars := []any{id, id}

	return &gn.Error{
		Code: errcode.DBConnectionLostError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("connection lost at id %d: %w", id, err),
	}
}

// CancelledError creates an error for a cancelled run.
func CancelledError(id int, err error) error {
	msg := "Ingestion cancelled at id <em>%d</em>"
	vars := []any{id}

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cancelled at id %d: %w", id, err),
	}
}

// MetricsError creates an error for a failed write of the
// metrics textfile.
func MetricsError(path string, err error) error {
	msg := "Cannot write metrics to <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PopulateMetricsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write metrics %s: %w", path, err),
	}
}
