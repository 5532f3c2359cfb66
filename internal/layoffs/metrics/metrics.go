// Package metrics registers the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// SnapshotsTotal counts computed dashboard snapshots.
	SnapshotsTotal prometheus.Counter
	// PipelineDuration tracks the enrich+filter+aggregate wall time.
	PipelineDuration prometheus.Summary
	// CorpusSize reflects the enriched corpus record count.
	CorpusSize prometheus.Gauge
	// RequestsTotal counts API requests by route and status code.
	RequestsTotal *prometheus.CounterVec
}

// New builds the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SnapshotsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "layoffpulse",
			Name:      "snapshots_total",
			Help:      "Number of dashboard snapshots computed",
		}),
		PipelineDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace: "layoffpulse",
			Name:      "pipeline_duration_seconds",
			Help:      "Time spent running the aggregation pipeline",
		}),
		CorpusSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "layoffpulse",
			Name:      "corpus_records",
			Help:      "Records in the enriched corpus",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "layoffpulse",
			Name:      "http_requests_total",
			Help:      "API requests by route and status code",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(m.SnapshotsTotal, m.PipelineDuration, m.CorpusSize, m.RequestsTotal)
	return m
}
