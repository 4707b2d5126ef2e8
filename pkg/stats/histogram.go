package stats

import (
	"math"
)

// DefaultBins is the number of histogram bins.
const DefaultBins = 20

// epsilon is the machine epsilon of float64.
const epsilon = 0x1p-52

// Bin is one histogram bucket covering [Min, Max).
// The last bin also includes its Max.
type Bin struct {
	Min   float64 `json:"min"   yaml:"min"`
	Max   float64 `json:"max"   yaml:"max"`
	Count int     `json:"count" yaml:"count"`
}

// Histogram is a fixed-width distribution of a column.
type Histogram struct {
	Column  string  `json:"column"  yaml:"column"`
	Min     float64 `json:"min"     yaml:"min"`
	Max     float64 `json:"max"     yaml:"max"`
	Width   float64 `json:"width"   yaml:"width"`
	Missing int     `json:"missing" yaml:"missing"`
	Bins    []Bin   `json:"bins"    yaml:"bins"`
}

// NewHistogram splits [min, max] of present values into bins of equal
// width. It returns false and an empty histogram when there are no
// present values or when the values do not vary.
func NewHistogram(name string, values []float64, bins int) (Histogram, bool) {
	res := Histogram{Column: name, Missing: Missing(values)}
	if bins < 1 {
		bins = DefaultBins
	}

	xs := present(values)
	if len(xs) == 0 {
		return res, false
	}

	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.Abs(hi-lo) < epsilon {
		return res, false
	}

	width := (hi - lo) / float64(bins)
	res.Min, res.Max, res.Width = lo, hi, width
	res.Bins = make([]Bin, bins)
	for i := range res.Bins {
		res.Bins[i].Min = lo + float64(i)*width
		res.Bins[i].Max = lo + float64(i+1)*width
	}
	res.Bins[bins-1].Max = hi

	for _, v := range xs {
		i := int(math.Floor((v - lo) / width))
		// maximum falls on the right edge
		if i >= bins {
			i = bins - 1
		}
		res.Bins[i].Count++
	}
	return res, true
}

// Counts returns counts of all bins.
func (h Histogram) Counts() []int {
	res := make([]int, len(h.Bins))
	for i, v := range h.Bins {
		res[i] = v.Count
	}
	return res
}

// Total returns the number of values in all bins.
func (h Histogram) Total() int {
	var res int
	for _, v := range h.Bins {
		res += v.Count
	}
	return res
}
