package lifecycle

import (
	"context"

	"github.com/gnames/pokedb/pkg/dataset"
)

// DatasetBuilder reads stored pokemon into an in-memory table with one
// row per pokemon and a joined list of its types.
type DatasetBuilder interface {
	Build(ctx context.Context) (*dataset.Table, error)
}
