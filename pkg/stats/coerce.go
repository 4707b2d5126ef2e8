// Package stats computes summary statistics of the pokemon dataset:
// numeric coercion of columns, Pearson correlation, fixed-width
// histograms and frequency ranking of multi-value text columns.
//
// Missing values are represented by NaN. They are skipped by every
// aggregate and are never an error.
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/gnames/pokedb/pkg/dataset"
)

// Coerce converts a column to float64 values. Text values are parsed as
// decimal numbers, values that cannot be parsed become NaN. Integer and
// float columns are used as is.
func Coerce(col *dataset.Column) []float64 {
	if col == nil {
		return nil
	}

	res := make([]float64, col.Len())
	switch col.Kind {
	case dataset.KindInt:
		for i, v := range col.Ints {
			res[i] = float64(v)
		}
	case dataset.KindFloat:
		for i, v := range col.Floats {
			if math.IsInf(v, 0) {
				v = math.NaN()
			}
			res[i] = v
		}
	case dataset.KindText:
		for i, v := range col.Texts {
			res[i] = parseFloat(v)
		}
	}
	return res
}

// Missing returns the number of missing values.
func Missing(xs []float64) int {
	var res int
	for _, v := range xs {
		if math.IsNaN(v) {
			res++
		}
	}
	return res
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// present returns non-missing values.
func present(xs []float64) []float64 {
	res := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}

// Paired returns values of rows where both x and y are present.
func Paired(x, y []float64) ([]float64, []float64) {
	n := min(len(x), len(y))
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := range n {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}
