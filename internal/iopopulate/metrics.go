package iopopulate

import (
	"time"

	"github.com/gnames/pokedb/pkg/populate"
	"github.com/prometheus/client_golang/prometheus"
)

type ingestMetrics struct {
	records  *prometheus.CounterVec
	duration prometheus.Gauge
	lastRun  prometheus.Gauge
}

// newIngestMetrics creates a registry with metrics of one run.
func newIngestMetrics(
	res populate.Summary,
	finished time.Time,
) (*prometheus.Registry, *ingestMetrics) {
	m := &ingestMetrics{
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokedb_ingest_records_total",
				Help: "Number of catalog ids processed, by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pokedb_ingest_duration_seconds",
				Help: "Duration of the last ingestion run",
			},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pokedb_ingest_last_run_timestamp_seconds",
				Help: "Unix time when the last ingestion run finished",
			},
		),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(m.records, m.duration, m.lastRun)

	for _, o := range populate.Outcomes {
		m.records.WithLabelValues(o.String()).Add(float64(res.Count(o)))
	}
	m.duration.Set(res.Duration.Seconds())
	m.lastRun.Set(float64(finished.Unix()))
	return reg, m
}

// WriteMetrics saves the summary of a run to a Prometheus textfile, to be
// picked up by the textfile collector of node_exporter.
func WriteMetrics(path string, res populate.Summary, finished time.Time) error {
	reg, _ := newIngestMetrics(res, finished)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return MetricsError(path, err)
	}
	return nil
}
