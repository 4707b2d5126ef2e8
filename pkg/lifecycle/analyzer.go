package lifecycle

import (
	"context"

	"github.com/gnames/pokedb/pkg/dataset"
	"github.com/gnames/pokedb/pkg/stats"
)

// Analyzer builds the dataset, computes its statistics, saves the
// report and renders charts.
type Analyzer interface {
	Analyze(ctx context.Context) (*stats.Report, error)
}

// ChartRenderer draws computed statistics to PNG files in a directory.
// It returns the path of the created file.
type ChartRenderer interface {
	// Distributions draws histograms of DistributionColumns in a 2x4 grid.
	Distributions(dir string, rep *stats.Report) (string, error)

	// TypeCombinations draws the type ranking as horizontal bars.
	TypeCombinations(dir string, rep *stats.Report) (string, error)

	// Correlations draws scatter plots of hp against height and weight.
	Correlations(dir string, tbl *dataset.Table, rep *stats.Report) (string, error)
}
