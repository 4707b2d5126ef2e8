/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/ioanalyze"
	"github.com/gnames/pokedb/internal/iochart"
	"github.com/gnames/pokedb/internal/iodataset"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/spf13/cobra"
)

// getAnalyzeCmd returns the analyze command.
func getAnalyzeCmd() *cobra.Command {
	var (
		outputDir string
		format    string
		bins      int
		topK      int
	)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute statistics and charts of stored pokemon",
		Long: `Analyze reads all stored pokemon into a dataset and saves:

  pokemon_stats.json      summary, correlations, histograms, top types
                          (pokemon_stats.yaml with --format yaml)
  pokemon_distribution.png  histograms of stats, height and weight
  type_combinations.png     most frequent types
  hp_correlation.png        hp against height and weight

Examples:
  pokedb analyze
  pokedb analyze --output-dir report --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAnalyze(cmd, outputDir, format, bins, topK)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	analyzeCmd.Flags().StringVarP(
		&outputDir, "output-dir", "o", "",
		"directory for charts and statistics",
	)
	analyzeCmd.Flags().StringVarP(
		&format, "format", "f", "json",
		"format of statistics report: json or yaml",
	)
	analyzeCmd.Flags().IntVarP(
		&bins, "bins", "b", 20, "number of histogram bins",
	)
	analyzeCmd.Flags().IntVarP(
		&topK, "top", "k", 20, "number of ranked types",
	)

	return analyzeCmd
}

func runAnalyze(
	cmd *cobra.Command,
	outputDir, format string,
	bins, topK int,
) error {
	ctx := context.Background()

	cfg.Update(analyzeOptions(cmd, outputDir, format, bins, topK))
	if err := cfg.Validate(); err != nil {
		return err
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	a := ioanalyze.New(cfg, iodataset.New(op), iochart.New())
	_, err = a.Analyze(ctx)
	return err
}

func analyzeOptions(
	cmd *cobra.Command,
	outputDir, format string,
	bins, topK int,
) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("output-dir") {
		res = append(res, config.OptReportOutputDir(outputDir))
	}
	if flags.Changed("format") {
		res = append(res, config.OptReportFormat(format))
	}
	if flags.Changed("bins") {
		res = append(res, config.OptReportBins(bins))
	}
	if flags.Changed("top") {
		res = append(res, config.OptReportTopK(topK))
	}
	return res
}
