// Package iopopulate implements Populator and Upserter interfaces for
// ingestion of the remote catalog into PostgreSQL.
// This is an impure I/O package that calls the catalog API through a
// Fetcher and writes normalized records to the database.
package iopopulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pokedb/internal/iofetch"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/lifecycle"
	"github.com/gnames/pokedb/pkg/pokemon"
	"github.com/gnames/pokedb/pkg/populate"
	"github.com/google/uuid"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	fetcher  lifecycle.Fetcher
	upserter lifecycle.Upserter
}

// New creates a new Populator.
func New(
	cfg *config.Config,
	f lifecycle.Fetcher,
	u lifecycle.Upserter,
) lifecycle.Populator {
	return &populator{cfg: cfg, fetcher: f, upserter: u}
}

// Populate walks ids of the configured range one by one. An id that
// cannot be fetched, extracted or stored is logged and skipped.
func (p *populator) Populate(
	ctx context.Context,
) (populate.Summary, error) {
	first, last := p.cfg.IDRange()
	if first < 1 || first > last {
		return populate.Summary{}, RangeError(first, last)
	}

	res := populate.Summary{
		RunID:   uuid.NewString(),
		FirstID: first,
		LastID:  last,
	}
	log := slog.With("run_id", res.RunID)
	startTime := time.Now()

	log.Info("Starting ingestion", "first_id", first, "last_id", last)
	gn.Info("Ingesting catalog ids <em>%d..%d</em>", first, last)

	// progress bar would interleave with log lines on the console
	var bar *pb.ProgressBar
	if p.cfg.Log.Destination == "file" {
		bar = pb.Full.Start(last - first + 1)
		bar.Set("prefix", "Ingesting pokemon: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	var fatal error
	for id := first; id <= last; id++ {
		if err := ctx.Err(); err != nil {
			fatal = CancelledError(id, err)
			break
		}

		outcome, err := p.ingest(ctx, log, id)
		res.Add(outcome)
		if bar != nil {
			bar.Increment()
		}
		if err != nil {
			fatal = err
			break
		}
	}
	if bar != nil {
		bar.Finish()
	}
	res.Duration = time.Since(startTime)

	mErr := p.finish(log, res)
	switch {
	case fatal != nil:
		return res, fatal
	case mErr != nil:
		return res, mErr
	case res.AllFailed():
		return res, AllFailedError(res.Total)
	}
	return res, nil
}

// ingest processes one id. Returned error means the run cannot go on.
func (p *populator) ingest(
	ctx context.Context,
	log *slog.Logger,
	id int,
) (populate.Outcome, error) {
	obj, err := p.fetcher.Fetch(ctx, id)
	if err != nil {
		if iofetch.IsNotFound(err) {
			log.Warn("Catalog entry not found", "id", id)
			return populate.NotFound, nil
		}
		log.Error("Cannot fetch catalog entry", "id", id, "error", err)
		return populate.FetchFailed, nil
	}

	rec, err := pokemon.Normalize(obj)
	if err != nil {
		log.Error("Cannot extract catalog entry", "id", id, "error", err)
		return populate.ExtractFailed, nil
	}

	pokemonID, err := p.upserter.Upsert(ctx, rec)
	if err != nil {
		log.Error("Cannot store pokemon",
			"id", id,
			"name", rec.Name,
			"error", err,
		)
		if cErr := ctx.Err(); cErr != nil {
			return populate.StoreFailed, CancelledError(id, cErr)
		}
		if pErr := p.upserter.Ping(ctx); pErr != nil {
			return populate.StoreFailed, ConnectionLostError(id, pErr)
		}
		return populate.StoreFailed, nil
	}

	log.Info("Stored pokemon",
		"id", id,
		"name", rec.Name,
		"pokemon_id", pokemonID,
	)
	return populate.Stored, nil
}

// finish logs and prints the summary, and saves metrics if requested.
func (p *populator) finish(log *slog.Logger, res populate.Summary) error {
	elapsed := gnfmt.TimeString(res.Duration.Seconds())
	log.Info("Ingestion complete",
		"total", res.Total,
		"stored", res.Stored,
		"not_found", res.NotFound,
		"fetch_failed", res.FetchFailed,
		"extract_failed", res.ExtractFailed,
		"store_failed", res.StoreFailed,
		"duration", elapsed,
	)
	gn.Info(`Ingestion complete
Stored: <em>%s</em>, not found: %s, failed: %s, total: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(res.Stored)),
		humanize.Comma(int64(res.NotFound)),
		humanize.Comma(int64(res.Failed()-res.NotFound)),
		humanize.Comma(int64(res.Total)),
		elapsed,
	)

	if res.Failed() > 0 && !res.AllFailed() {
		log.Warn("Some catalog entries were not stored",
			"failed", res.Failed(),
			"stored", res.Stored)
	}

	path := p.cfg.Ingest.MetricsFile
	if path == "" {
		return nil
	}
	if err := WriteMetrics(path, res, time.Now()); err != nil {
		log.Error("Cannot write metrics", "path", path, "error", err)
		return err
	}
	log.Info("Saved metrics", "path", path)
	return nil
}
