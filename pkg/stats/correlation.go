package stats

import (
	"math"

	"github.com/gnames/pokedb/pkg/dataset"
)

// Correlation describes the linear relation of two columns.
type Correlation struct {
	X string `json:"x" yaml:"x"`
	Y string `json:"y" yaml:"y"`

	// Pairs is the number of rows where both values are present.
	Pairs int `json:"pairs" yaml:"pairs"`

	// Covariance is the sample covariance, nil when Pairs < 2.
	Covariance *float64 `json:"covariance" yaml:"covariance"`

	// R is the Pearson coefficient, nil when it is undefined because
	// one of the columns does not vary.
	R *float64 `json:"r" yaml:"r"`
}

// Mean returns the arithmetic mean of present values, or NaN if there
// are none.
func Mean(xs []float64) float64 {
	var sum float64
	var n int
	for _, v := range xs {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Covariance returns the sample covariance of x and y computed over rows
// where both values are present. It is NaN with less than two such rows.
func Covariance(x, y []float64) float64 {
	xs, ys := Paired(x, y)
	n := len(xs)
	if n < 2 {
		return math.NaN()
	}
	mx, my := Mean(xs), Mean(ys)
	var sum float64
	for i := range n {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(n-1)
}

// Pearson returns the Pearson correlation coefficient of x and y:
//
//	r = Σ(x-x̄)(y-ȳ) / (√Σ(x-x̄)² · √Σ(y-ȳ)²)
//
// Only rows where both values are present take part, the means are
// computed over those rows. The result is NaN when either sum of squares
// is zero, callers have to check it before use.
func Pearson(x, y []float64) float64 {
	xs, ys := Paired(x, y)
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	mx, my := Mean(xs), Mean(ys)

	var sxy, sxx, syy float64
	for i := range n {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / (math.Sqrt(sxx) * math.Sqrt(syy))
}

// Correlate computes correlations of the target column with each of the
// other columns. Text columns are coerced to numbers first.
func Correlate(
	tbl *dataset.Table,
	target string,
	others ...string,
) ([]Correlation, error) {
	col, err := tbl.Column(target)
	if err != nil {
		return nil, err
	}
	x := Coerce(col)

	res := make([]Correlation, 0, len(others))
	for _, v := range others {
		col, err := tbl.Column(v)
		if err != nil {
			return nil, err
		}
		y := Coerce(col)
		xs, _ := Paired(x, y)
		res = append(res, Correlation{
			X:          target,
			Y:          v,
			Pairs:      len(xs),
			Covariance: defined(Covariance(x, y)),
			R:          defined(Pearson(x, y)),
		})
	}
	return res, nil
}

func defined(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
