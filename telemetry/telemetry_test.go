package telemetry_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaspan-go/kaspan/telemetry"
)

func TestNoopSinkDoesNothing(t *testing.T) {
	var s telemetry.Sink = telemetry.NoopSink{}
	assert.NotPanics(t, func() {
		s.Phase("trim")
		s.Decided(3)
		s.Duration("trim", time.Millisecond)
	})
}

func TestPrometheusSinkRecordsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := telemetry.NewPrometheusSink(reg)
	require.NoError(t, err)

	sink.Phase("fwbw")
	sink.Phase("fwbw")
	sink.Decided(5)
	sink.Decided(2)
	sink.Duration("fwbw", 10*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var gotPhase, gotDecided bool
	for _, fam := range families {
		switch fam.GetName() {
		case "kaspan_phase_entries_total":
			gotPhase = true
			require.Len(t, fam.Metric, 1)
			assert.Equal(t, float64(2), fam.Metric[0].GetCounter().GetValue())
		case "kaspan_vertices_decided_total":
			gotDecided = true
			assert.Equal(t, float64(7), fam.Metric[0].GetCounter().GetValue())
		}
	}
	assert.True(t, gotPhase)
	assert.True(t, gotDecided)
}
