package pipeline_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/pipeline"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// recordingSink counts telemetry calls across every rank sharing it.
type recordingSink struct {
	mu      sync.Mutex
	phases  []string
	decided uint64
}

func (s *recordingSink) Phase(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, name)
}

func (s *recordingSink) Decided(count uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decided += count
}

func (s *recordingSink) Duration(string, time.Duration) {}

func TestRunWithTelemetryMatchesRunAndReportsProgress(t *testing.T) {
	edges := edgesOf([][2]int{
		{0, 2}, {1, 0}, {1, 2}, {1, 3}, {2, 0},
		{3, 2}, {3, 4}, {4, 1}, {4, 3}, {5, 6}, {6, 5},
	})
	const n, size = 7, 3

	parts := make([]*partition.Balanced, size)
	for r := 0; r < size; r++ {
		p, err := partition.NewBalanced(sccgraph.Vertex(n), r, size)
		require.NoError(t, err)
		parts[r] = p
	}
	colls := collective.NewLocalCluster(size)
	sink := &recordingSink{}

	global := make([]sccgraph.Vertex, n)
	g, ctx := errgroup.WithContext(context.Background())
	for r := 0; r < size; r++ {
		r := r
		g.Go(func() error {
			fwHead, fwCSR := buildFwBalanced(parts[r], edges)
			bwHead, bwCSR, err := bidigraph.BuildBackward(ctx, parts[r], colls[r], fwHead, fwCSR)
			if err != nil {
				return err
			}
			gp := &bidigraph.BidiGraphPart{N: sccgraph.Vertex(n), FwHead: fwHead, FwCSR: fwCSR, BwHead: bwHead, BwCSR: bwCSR}

			sccID, err := pipeline.RunWithTelemetry(ctx, gp, parts[r], colls[r], sink)
			if err != nil {
				return err
			}
			for k := sccgraph.Vertex(0); k < parts[r].LocalN(); k++ {
				global[parts[r].ToGlobal(k)] = sccID[k]
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	want := []sccgraph.Vertex{0, 1, 0, 1, 1, 5, 5}
	assert.Equal(t, want, global)
	assert.Contains(t, sink.phases, "trim")
	assert.Equal(t, uint64(n), sink.decided)
}
