package server

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "nntour"

// Metrics are the solver counters and histograms exposed on /metrics.
type Metrics struct {
	Solves   *prometheus.CounterVec
	Duration prometheus.Histogram
	Length   prometheus.Histogram
}

// NewMetrics creates the metric set and registers it on reg.
// Use a fresh prometheus.NewRegistry() per test to avoid collisions.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "solves_total",
				Help:      "Total number of tour requests by status",
			},
			[]string{"status"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "solve_duration_seconds",
				Help:      "Time to generate cities, build the distance matrix and solve",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		Length: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "tour_length",
				Help:      "Closed tour length of solved unit-square instances",
				Buckets:   prometheus.LinearBuckets(1, 1, 12),
			},
		),
	}
	reg.MustRegister(m.Solves, m.Duration, m.Length)

	return m
}
