package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink reports phase transitions, decided-vertex counts, and
// phase durations to a prometheus.Registerer, one counter/histogram set
// shared across every rank sharing the registry.
type PrometheusSink struct {
	phaseTotal   *prometheus.CounterVec
	decidedTotal prometheus.Counter
	phaseSeconds *prometheus.HistogramVec
}

// NewPrometheusSink registers its metrics on reg and returns a ready Sink.
// Pass prometheus.DefaultRegisterer to publish on the default registry.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	s := &PrometheusSink{
		phaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kaspan_phase_entries_total",
			Help: "Number of times each pipeline phase was entered.",
		}, []string{"phase"}),
		decidedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kaspan_vertices_decided_total",
			Help: "Cumulative number of vertices committed to an scc_id.",
		}),
		phaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kaspan_phase_duration_seconds",
			Help:    "Observed wall-clock duration of each pipeline phase.",
			Buckets: prometheus.DefBuckets,
		}, []string{"phase"}),
	}

	for _, c := range []prometheus.Collector{s.phaseTotal, s.decidedTotal, s.phaseSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *PrometheusSink) Phase(name string) {
	s.phaseTotal.WithLabelValues(name).Inc()
}

func (s *PrometheusSink) Decided(count uint64) {
	s.decidedTotal.Add(float64(count))
}

func (s *PrometheusSink) Duration(phase string, d time.Duration) {
	s.phaseSeconds.WithLabelValues(phase).Observe(d.Seconds())
}
