// Package ioanalyze runs the analysis of stored pokemon: it builds the
// dataset, computes statistics, saves the report and renders charts.
package ioanalyze

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pokedb/internal/iofs"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/dataset"
	"github.com/gnames/pokedb/pkg/lifecycle"
	"github.com/gnames/pokedb/pkg/stats"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ReportName is the file name of the statistics report without
// extension.
const ReportName = "pokemon_stats"

type analyzer struct {
	cfg     *config.Config
	builder lifecycle.DatasetBuilder
	charts  lifecycle.ChartRenderer
}

// New creates an Analyzer.
func New(
	cfg *config.Config,
	b lifecycle.DatasetBuilder,
	charts lifecycle.ChartRenderer,
) lifecycle.Analyzer {
	return &analyzer{cfg: cfg, builder: b, charts: charts}
}

func (a *analyzer) Analyze(ctx context.Context) (*stats.Report, error) {
	startTime := time.Now()
	dir := a.cfg.Report.OutputDir
	if err := iofs.EnsureDir(dir); err != nil {
		return nil, err
	}

	tbl, err := a.builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	if tbl.Rows() == 0 {
		gn.Warn("Dataset is empty, run <em>pokedb populate</em> first")
	}

	rep, err := stats.NewReport(tbl, a.cfg.Report.Bins, a.cfg.Report.TopK)
	if err != nil {
		return nil, err
	}
	for _, v := range rep.NoVariation {
		slog.Warn("Column has no variation, histogram skipped", "column", v)
	}

	reportPath, err := a.writeReport(dir, rep)
	if err != nil {
		return nil, err
	}

	files, err := a.renderCharts(ctx, dir, tbl, rep)
	if err != nil {
		return nil, err
	}

	a.printSummary(rep, reportPath, files, time.Since(startTime))
	return rep, nil
}

func (a *analyzer) writeReport(dir string, rep *stats.Report) (string, error) {
	format := strings.ToLower(a.cfg.Report.Format)
	path := filepath.Join(dir, ReportName+"."+format)

	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = yaml.Marshal(rep)
	default:
		data, err = gnfmt.GNjson{Pretty: true}.Encode(rep)
	}
	if err != nil {
		return "", ReportWriteError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return "", ReportWriteError(path, err)
	}
	slog.Info("Saved statistics report", "path", path)
	return path, nil
}

// renderCharts draws all charts concurrently. It returns paths of the
// files in a stable order.
func (a *analyzer) renderCharts(
	ctx context.Context,
	dir string,
	tbl *dataset.Table,
	rep *stats.Report,
) ([]string, error) {
	res := make([]string, 3)
	g, ctx := errgroup.WithContext(ctx)

	renders := []func() (string, error){
		func() (string, error) { return a.charts.Distributions(dir, rep) },
		func() (string, error) { return a.charts.TypeCombinations(dir, rep) },
		func() (string, error) { return a.charts.Correlations(dir, tbl, rep) },
	}
	for i, render := range renders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := render()
			if err != nil {
				return err
			}
			res[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *analyzer) printSummary(
	rep *stats.Report,
	reportPath string,
	files []string,
	elapsed time.Duration,
) {
	var corr []string
	for _, v := range rep.Correlations {
		r := "undefined"
		if v.R != nil {
			r = fmt.Sprintf("%.3f", *v.R)
		}
		corr = append(corr, fmt.Sprintf("%s/%s r = <em>%s</em>", v.X, v.Y, r))
	}

	gn.Info(`Analysis complete
Rows: <em>%s</em>; %s.
Report: <em>%s</em>
Charts: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(rep.Rows)),
		strings.Join(corr, ", "),
		reportPath,
		strings.Join(files, ", "),
		gnfmt.TimeString(elapsed.Seconds()),
	)
}
