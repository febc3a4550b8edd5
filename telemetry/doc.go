// Package telemetry defines the per-phase statistics sink interface
// (spec.md §6) the pipeline reports into as it moves through trim, FwBw
// rounds, and coloring. NoopSink is the zero-cost default; PrometheusSink
// wires the same counters/histograms the wider Go ecosystem reaches for
// (github.com/prometheus/client_golang, the way a tfd-proxy-style collector
// registers one counter per event kind and a histogram per phase duration).
package telemetry
