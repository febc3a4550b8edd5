package telemetry

import "time"

// Sink receives progress events from a running pipeline. Implementations
// must be safe for concurrent use: pipeline.Run is called once per rank,
// each on its own goroutine, and a PrometheusSink is typically shared
// across ranks within one process (collective.LocalCluster).
type Sink interface {
	// Phase announces entry into a named pipeline phase ("trim",
	// "fwbw", "coloring").
	Phase(name string)
	// Decided records that count additional vertices were committed to
	// an scc_id since the last report.
	Decided(count uint64)
	// Duration records how long one phase invocation took.
	Duration(phase string, d time.Duration)
}

// NoopSink discards every event; it is the pipeline's default so
// instrumentation is opt-in.
type NoopSink struct{}

func (NoopSink) Phase(string)              {}
func (NoopSink) Decided(uint64)            {}
func (NoopSink) Duration(string, time.Duration) {}
