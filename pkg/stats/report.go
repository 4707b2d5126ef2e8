package stats

import (
	"github.com/gnames/pokedb/pkg/dataset"
)

// DistributionColumns are plotted as histograms, in the order of the
// distribution chart tiles.
var DistributionColumns = []string{
	dataset.ColWeight,
	dataset.ColHeight,
	dataset.ColAttack,
	dataset.ColSpeed,
	dataset.ColHP,
	dataset.ColSpecialAttack,
	dataset.ColSpecialDefense,
	dataset.ColDefense,
}

// SummaryColumns are described in the report.
var SummaryColumns = []string{
	dataset.ColHeight,
	dataset.ColWeight,
	dataset.ColHP,
	dataset.ColAttack,
	dataset.ColDefense,
	dataset.ColSpecialAttack,
	dataset.ColSpecialDefense,
	dataset.ColSpeed,
}

// CorrelationTarget is correlated with CorrelationColumns.
const CorrelationTarget = dataset.ColHP

var CorrelationColumns = []string{dataset.ColHeight, dataset.ColWeight}

// Report is the result of the analysis of the dataset.
type Report struct {
	Rows         int             `json:"rows"         yaml:"rows"`
	Columns      []ColumnSummary `json:"columns"      yaml:"columns"`
	Correlations []Correlation   `json:"correlations" yaml:"correlations"`
	Histograms   []Histogram     `json:"histograms"   yaml:"histograms"`

	// NoVariation lists columns without histograms because all their
	// values are equal or missing.
	NoVariation []string `json:"no_variation,omitempty" yaml:"no_variation,omitempty"`

	TopTypes []CategoryCount `json:"top_types" yaml:"top_types"`
}

// NewReport computes all statistics of the pokemon dataset.
func NewReport(tbl *dataset.Table, bins, topK int) (*Report, error) {
	res := &Report{Rows: tbl.Rows()}

	for _, v := range SummaryColumns {
		col, err := tbl.Column(v)
		if err != nil {
			return nil, err
		}
		res.Columns = append(res.Columns, Describe(col))
	}

	var err error
	res.Correlations, err = Correlate(tbl, CorrelationTarget,
		CorrelationColumns...)
	if err != nil {
		return nil, err
	}

	for _, v := range DistributionColumns {
		col, err := tbl.Column(v)
		if err != nil {
			return nil, err
		}
		h, ok := NewHistogram(v, Coerce(col), bins)
		if !ok {
			res.NoVariation = append(res.NoVariation, v)
			continue
		}
		res.Histograms = append(res.Histograms, h)
	}

	col, err := tbl.Column(dataset.ColCategories)
	if err != nil {
		return nil, err
	}
	if col.Kind != dataset.KindText {
		return nil, dataset.ColumnError(col.Name, "must be text")
	}
	res.TopTypes = TopK(col.Texts, dataset.CategorySep, topK)

	return res, nil
}

// Histogram returns a histogram of a column, if it was computed.
func (r *Report) Histogram(column string) (Histogram, bool) {
	for _, v := range r.Histograms {
		if v.Column == column {
			return v, true
		}
	}
	return Histogram{}, false
}
