package lifecycle

import (
	"context"

	"github.com/antonholmquist/jason"
)

// Fetcher downloads one catalog entry by its numeric id.
type Fetcher interface {
	// Fetch returns the entry as a loosely-typed JSON object. A missing
	// entry results in a NotFound error, other failures in transport or
	// decode errors.
	Fetch(ctx context.Context, id int) (*jason.Object, error)
}
