// Package iochart draws statistics of the pokemon dataset to PNG files
// using gonum/plot.
package iochart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gnames/pokedb/pkg/dataset"
	"github.com/gnames/pokedb/pkg/lifecycle"
	"github.com/gnames/pokedb/pkg/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DistributionFile = "pokemon_distribution.png"
	TypeFile         = "type_combinations.png"
	CorrelationFile  = "hp_correlation.png"
)

// Sizes of charts in pixels.
const (
	distWidth, distHeight = 1600, 800
	typeWidth, typeHeight = 2000, 1000
	corrWidth, corrHeight = 1200, 600
)

// dpi makes one vg point equal to one pixel.
const dpi = 72

type renderer struct{}

// New creates a ChartRenderer.
func New() lifecycle.ChartRenderer {
	return renderer{}
}

// Distributions draws a histogram for every column of
// stats.DistributionColumns. Columns without variation get an empty
// tile.
func (r renderer) Distributions(dir string, rep *stats.Report) (string, error) {
	path := filepath.Join(dir, DistributionFile)
	cols := stats.DistributionColumns
	const rows, perRow = 2, 4

	plots := make([][]*plot.Plot, rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, perRow)
		for i := range plots[j] {
			idx := j*perRow + i
			if idx >= len(cols) {
				plots[j][i] = plot.New()
				continue
			}
			plots[j][i] = histogramPlot(cols[idx], rep)
		}
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      perRow,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	err := savePNG(path, distWidth, distHeight, func(dc draw.Canvas) {
		canvases := plot.Align(plots, tiles, dc)
		for j := range plots {
			for i := range plots[j] {
				plots[j][i].Draw(canvases[j][i])
			}
		}
	})
	if err != nil {
		return "", ChartRenderError(path, err)
	}
	slog.Info("Saved chart", "path", path)
	return path, nil
}

func histogramPlot(column string, rep *stats.Report) *plot.Plot {
	p := plot.New()
	p.Title.Text = column
	p.X.Label.Text = column
	p.Y.Label.Text = "count"

	h, ok := rep.Histogram(column)
	if !ok {
		p.Title.Text = column + " (no variation)"
		return p
	}

	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{
			Min:    b.Min,
			Max:    b.Max,
			Weight: float64(b.Count),
		}
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     h.Width,
		FillColor: plotutil.Color(0),
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hist)
	return p
}

// TypeCombinations draws the ranking of type combinations as horizontal
// bars, the most frequent on top.
func (r renderer) TypeCombinations(dir string, rep *stats.Report) (string, error) {
	path := filepath.Join(dir, TypeFile)

	p := plot.New()
	p.Title.Text = "Most frequent pokemon types"
	p.X.Label.Text = "count"

	// bars are drawn from the bottom
	top := slices.Clone(rep.TopTypes)
	slices.Reverse(top)

	if len(top) > 0 {
		vals := make(plotter.Values, len(top))
		names := make([]string, len(top))
		for i, v := range top {
			vals[i] = float64(v.Count)
			names[i] = v.Value
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(30))
		if err != nil {
			return "", ChartRenderError(path, err)
		}
		bars.Horizontal = true
		bars.Color = plotutil.Color(1)
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalY(names...)
	}

	err := savePNG(path, typeWidth, typeHeight, func(dc draw.Canvas) {
		p.Draw(dc)
	})
	if err != nil {
		return "", ChartRenderError(path, err)
	}
	slog.Info("Saved chart", "path", path)
	return path, nil
}

// Correlations draws scatter plots of the correlation target against
// each of stats.CorrelationColumns. Only rows where both values are
// present are plotted.
func (r renderer) Correlations(
	dir string,
	tbl *dataset.Table,
	rep *stats.Report,
) (string, error) {
	path := filepath.Join(dir, CorrelationFile)

	row := make([]*plot.Plot, 0, len(rep.Correlations))
	for _, c := range rep.Correlations {
		p, err := scatterPlot(tbl, c)
		if err != nil {
			return "", ChartRenderError(path, err)
		}
		row = append(row, p)
	}
	if len(row) == 0 {
		row = append(row, plot.New())
	}
	plots := [][]*plot.Plot{row}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	err := savePNG(path, corrWidth, corrHeight, func(dc draw.Canvas) {
		canvases := plot.Align(plots, tiles, dc)
		for i := range row {
			row[i].Draw(canvases[0][i])
		}
	})
	if err != nil {
		return "", ChartRenderError(path, err)
	}
	slog.Info("Saved chart", "path", path)
	return path, nil
}

func scatterPlot(tbl *dataset.Table, c stats.Correlation) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = c.Y
	p.Y.Label.Text = c.X
	p.Title.Text = fmt.Sprintf("%s vs %s (r undefined)", c.X, c.Y)
	if c.R != nil {
		p.Title.Text = fmt.Sprintf("%s vs %s (r = %.3f)", c.X, c.Y, *c.R)
	}

	xCol, err := tbl.Column(c.Y)
	if err != nil {
		return nil, err
	}
	yCol, err := tbl.Column(c.X)
	if err != nil {
		return nil, err
	}
	xs, ys := stats.Paired(stats.Coerce(xCol), stats.Coerce(yCol))

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	if len(pts) == 0 {
		return p, nil
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = plotutil.Color(2)
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	return p, nil
}

// savePNG draws on a canvas of the given size in pixels and writes it
// to path.
func savePNG(path string, width, height int, fn func(draw.Canvas)) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(dpi),
	)
	fn(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
