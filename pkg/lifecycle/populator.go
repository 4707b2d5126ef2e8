package lifecycle

import (
	"context"

	"github.com/gnames/pokedb/pkg/populate"
)

// Populator walks the configured id range, fetching, normalizing and
// storing every entry.
type Populator interface {
	// Populate ingests the id range. Failures of single ids are logged
	// and counted, they do not stop the run. Loss of the database
	// connection stops the run with an error.
	Populate(ctx context.Context) (populate.Summary, error)
}
