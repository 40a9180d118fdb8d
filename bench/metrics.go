package bench

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus series a Runner updates per Record.
// Register them on a private registry and export with WriteTextfile, or on
// prometheus.DefaultRegisterer when the process already serves /metrics.
type Metrics struct {
	// searches counts measurements by algorithm and outcome
	// ("found", "not_found", "aborted").
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.CounterVec
	instance *prometheus.GaugeVec
}

// NewMetrics registers the harness series on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "subiso_bench_searches_total",
			Help: "Measured searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "subiso_bench_search_duration_seconds",
			Help:    "Wall time of one embedding search",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"algorithm", "graph_type"}),

		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "subiso_bench_expanded_states_total",
			Help: "Search states expanded across all measurements",
		}, []string{"algorithm"}),

		instance: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "subiso_bench_last_target_size",
			Help: "Target size of the most recent measurement",
		}, []string{"algorithm", "pattern_size"}),
	}
}

// Observe folds one record into the series. A nil receiver is a no-op.
func (m *Metrics) Observe(r Record) {
	if m == nil {
		return
	}

	outcome := "not_found"
	switch {
	case r.Aborted:
		outcome = "aborted"
	case r.Found:
		outcome = "found"
	}
	m.searches.WithLabelValues(r.Algorithm, outcome).Inc()
	m.duration.WithLabelValues(r.Algorithm, r.GraphType).Observe(r.Time)
	m.expanded.WithLabelValues(r.Algorithm).Add(float64(r.Steps))
	m.instance.WithLabelValues(r.Algorithm, strconv.Itoa(r.PatternSize)).Set(float64(r.Size))
}

// WriteTextfile exports every series gathered by g in the node_exporter
// textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("bench: metrics textfile: %w", err)
	}

	return nil
}
