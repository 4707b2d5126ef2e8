package dataset_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/pkg/dataset"
	"github.com/gnames/pokedb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tbl, err := dataset.NewTable(
		dataset.NewIntColumn(dataset.ColHP, []int64{45, 60, 80}),
		dataset.NewTextColumn(dataset.ColHeight, []string{"0.70", "1.00", "2.00"}),
		dataset.NewFloatColumn("ratio", []float64{0.1, 0.2, 0.3}),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, []string{"hp", "height", "ratio"}, tbl.Names())
	assert.Len(t, tbl.Columns(), 3)

	col, err := tbl.Column(dataset.ColHeight)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindText, col.Kind)
	assert.Equal(t, 3, col.Len())

	_, err = tbl.Column("speed")
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DatasetColumnError, gnErr.Code)
	assert.Equal(t, "speed", gnErr.Vars[0])
}

func TestNewTableEmpty(t *testing.T) {
	tbl, err := dataset.NewTable(
		dataset.NewIntColumn(dataset.ColHP, nil),
		dataset.NewTextColumn(dataset.ColCategories, nil),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Rows())
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		msg  string
		cols []*dataset.Column
	}{
		{
			msg: "length mismatch",
			cols: []*dataset.Column{
				dataset.NewIntColumn("a", []int64{1, 2}),
				dataset.NewIntColumn("b", []int64{1}),
			},
		},
		{
			msg: "duplicate name",
			cols: []*dataset.Column{
				dataset.NewIntColumn("a", []int64{1}),
				dataset.NewTextColumn("a", []string{"x"}),
			},
		},
		{
			msg:  "nil column",
			cols: []*dataset.Column{nil},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := dataset.NewTable(v.cols...)
			assert.Error(t, err)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", dataset.KindInt.String())
	assert.Equal(t, "float", dataset.KindFloat.String())
	assert.Equal(t, "text", dataset.KindText.String())
	assert.Equal(t, "Kind(7)", dataset.Kind(7).String())
}
