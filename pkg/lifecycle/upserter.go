package lifecycle

import (
	"context"

	"github.com/gnames/pokedb/pkg/pokemon"
)

// Upserter writes normalized records to the five relations.
type Upserter interface {
	// Upsert stores the record and its types and abilities. It returns
	// the id of the pokemon row. Repeating Upsert with the same record
	// changes nothing.
	//
	// The pokemon row is committed before the links are written. If
	// linking fails, the row stays and a later Upsert of the same record
	// completes the links.
	Upsert(ctx context.Context, rec pokemon.Record) (int, error)

	// Ping checks if the database connection is alive.
	Ping(ctx context.Context) error
}
