package stats

import (
	"github.com/gnames/pokedb/pkg/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes values of one column after coercion.
// Numeric fields are nil when the column has no present values.
type ColumnSummary struct {
	Name    string   `json:"name"              yaml:"name"`
	Kind    string   `json:"kind"              yaml:"kind"`
	Count   int      `json:"count"             yaml:"count"`
	Missing int      `json:"missing"           yaml:"missing"`
	Mean    *float64 `json:"mean,omitempty"    yaml:"mean,omitempty"`
	Min     *float64 `json:"min,omitempty"     yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"     yaml:"max,omitempty"`
	StdDev  *float64 `json:"std_dev,omitempty" yaml:"std_dev,omitempty"`
}

// Describe summarizes a column.
func Describe(col *dataset.Column) ColumnSummary {
	vals := Coerce(col)
	xs := present(vals)
	res := ColumnSummary{
		Name:    col.Name,
		Kind:    col.Kind.String(),
		Count:   len(xs),
		Missing: len(vals) - len(xs),
	}
	if len(xs) == 0 {
		return res
	}

	mean, std := stat.MeanStdDev(xs, nil)
	res.Mean = defined(mean)
	res.StdDev = defined(std)
	res.Min = defined(floats.Min(xs))
	res.Max = defined(floats.Max(xs))
	return res
}
