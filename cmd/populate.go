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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/iofetch"
	"github.com/gnames/pokedb/internal/iopopulate"
	"github.com/gnames/pokedb/internal/ioschema"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/schema"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var (
		firstID     int
		lastID      int
		reseedTypes bool
		metricsFile string
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database with the pokemon catalog",
		Long: `Fetch pokemon from the catalog API and store them.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates missing tables
  3. Optionally restores the fixed list of types
  4. Fetches every id of the range, normalizes and stores it
  5. Reports counts of stored, missing and failed entries
  6. Runs VACUUM ANALYZE on the tables

Entries that cannot be fetched or stored are logged and skipped.
Rerunning the command updates stored pokemon in place.

Examples:
  # Ingest ids from 1 to ingest.total (251 by default)
  pokedb populate

  # Ingest a range of ids
  pokedb populate --first 152 --last 251

  # Restore types first and save metrics for node_exporter
  pokedb populate --reseed-types --metrics-file pokedb.prom`,
		Aliases: []string{"add"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, firstID, lastID, reseedTypes, metricsFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().IntVar(
		&firstID, "first", 1, "first catalog id of the run",
	)
	populateCmd.Flags().IntVar(
		&lastID, "last", 0, "last catalog id of the run (default ingest.total)",
	)
	populateCmd.Flags().BoolVarP(
		&reseedTypes, "reseed-types", "r", false,
		"truncate and refill types before ingestion",
	)
	populateCmd.Flags().StringVarP(
		&metricsFile, "metrics-file", "m", "",
		"save run metrics to a Prometheus textfile",
	)

	return populateCmd
}

func runPopulate(
	cmd *cobra.Command,
	firstID, lastID int,
	reseedTypes bool,
	metricsFile string,
) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Update(populateOptions(cmd, firstID, lastID, reseedTypes, metricsFile))
	if err := cfg.Validate(); err != nil {
		return err
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	sm := ioschema.NewManager(op)
	if err = sm.EnsureSchema(ctx); err != nil {
		return err
	}

	if cfg.Ingest.ReseedTypes {
		if err = sm.ReseedTypes(ctx, schema.TypeVocabulary); err != nil {
			return err
		}
		gn.Info("Reseeded <em>%d</em> types", len(schema.TypeVocabulary))
	}

	populator := iopopulate.New(
		cfg,
		iofetch.New(cfg),
		iopopulate.NewUpserter(op),
	)
	res, err := populator.Populate(ctx)
	if err != nil {
		return err
	}

	if res.Stored > 0 {
		if err = sm.Vacuum(ctx); err != nil {
			return err
		}
	}

	gn.Info("Next step: run '<em>pokedb analyze</em>' to get statistics")
	return nil
}

// populateOptions converts explicitly set flags to config options.
func populateOptions(
	cmd *cobra.Command,
	firstID, lastID int,
	reseedTypes bool,
	metricsFile string,
) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("first") {
		res = append(res, config.OptIngestFirstID(firstID))
	}
	if flags.Changed("last") {
		res = append(res, config.OptIngestLastID(lastID))
	}
	if flags.Changed("reseed-types") {
		res = append(res, config.OptIngestReseedTypes(reseedTypes))
	}
	if flags.Changed("metrics-file") {
		res = append(res, config.OptIngestMetricsFile(metricsFile))
	}
	return res
}
