package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/pipeline"
	"github.com/kaspan-go/kaspan/sccgraph"
)

func buildFwBalanced(part *partition.Balanced, edges []sccgraph.Edge) ([]uint64, []sccgraph.Vertex) {
	localN := int(part.LocalN())
	adj := make([][]sccgraph.Vertex, localN)
	for _, e := range edges {
		if !part.HasLocal(e.From) {
			continue
		}
		k := part.ToLocal(e.From)
		adj[k] = append(adj[k], e.To)
	}

	head := make([]uint64, localN+1)
	var csr []sccgraph.Vertex
	for k := 0; k < localN; k++ {
		csr = append(csr, adj[k]...)
		head[k+1] = uint64(len(csr))
	}

	return head, csr
}

// runPipeline runs the full distributed pipeline over n vertices/edges,
// partitioned with partition.Balanced across size ranks, and returns the
// global scc_id array (index by global vertex id).
func runPipeline(t *testing.T, n int, edges []sccgraph.Edge, size int) []sccgraph.Vertex {
	t.Helper()

	parts := make([]*partition.Balanced, size)
	for r := 0; r < size; r++ {
		p, err := partition.NewBalanced(sccgraph.Vertex(n), r, size)
		require.NoError(t, err)
		parts[r] = p
	}
	colls := collective.NewLocalCluster(size)

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

			sccID, err := pipeline.Run(ctx, gp, parts[r], colls[r])
			if err != nil {
				return err
			}
			for k := sccgraph.Vertex(0); k < parts[r].LocalN(); k++ {
				global[parts[r].ToGlobal(sccgraph.Vertex(k))] = sccID[k]
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	return global
}

func edgesOf(pairs [][2]int) []sccgraph.Edge {
	out := make([]sccgraph.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = sccgraph.Edge{From: sccgraph.Vertex(p[0]), To: sccgraph.Vertex(p[1])}
	}

	return out
}

func TestPipelineScenarioA_SevenVertexExample(t *testing.T) {
	edges := edgesOf([][2]int{
		{0, 2}, {1, 0}, {1, 2}, {1, 3}, {2, 0},
		{3, 2}, {3, 4}, {4, 1}, {4, 3}, {5, 6}, {6, 5},
	})
	want := []sccgraph.Vertex{0, 1, 0, 1, 1, 5, 5}

	for _, size := range []int{1, 2, 3, 7} {
		got := runPipeline(t, 7, edges, size)
		assert.Equal(t, want, got, "size=%d", size)
	}
}

func TestPipelineScenarioB_ChainOfSingletons(t *testing.T) {
	edges := edgesOf([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	want := []sccgraph.Vertex{0, 1, 2, 3, 4}

	for _, size := range []int{1, 2, 5} {
		got := runPipeline(t, 5, edges, size)
		assert.Equal(t, want, got, "size=%d", size)
	}
}

func TestPipelineScenarioC_SingleFourCycle(t *testing.T) {
	edges := edgesOf([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	want := []sccgraph.Vertex{0, 0, 0, 0}

	for _, size := range []int{1, 2, 4} {
		got := runPipeline(t, 4, edges, size)
		assert.Equal(t, want, got, "size=%d", size)
	}
}

func TestPipelineScenarioD_TwoDisjointThreeCycles(t *testing.T) {
	edges := edgesOf([][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})
	want := []sccgraph.Vertex{0, 0, 0, 3, 3, 3}

	for _, size := range []int{1, 2, 3} {
		got := runPipeline(t, 6, edges, size)
		assert.Equal(t, want, got, "size=%d", size)
	}
}

func TestPipelineScenarioF_TrimChainDecidesInOnePass(t *testing.T) {
	const n = 25
	edges := make([]sccgraph.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, sccgraph.Edge{From: sccgraph.Vertex(i), To: sccgraph.Vertex(i + 1)})
	}
	want := make([]sccgraph.Vertex, n)
	for i := range want {
		want[i] = sccgraph.Vertex(i)
	}

	for _, size := range []int{1, 3, 7} {
		got := runPipeline(t, n, edges, size)
		assert.Equal(t, want, got, "size=%d", size)
	}
}

func TestPipelineEmptyGraph(t *testing.T) {
	got := runPipeline(t, 0, nil, 1)
	assert.Empty(t, got)
}

func TestPipelineFullyStronglyConnected(t *testing.T) {
	// A single directed cycle over 8 vertices; everything collapses
	// to one SCC, decided by a single FwBw round (coloring never entered).
	n := 8
	edges := make([]sccgraph.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, sccgraph.Edge{From: sccgraph.Vertex(i), To: sccgraph.Vertex((i + 1) % n)})
	}
	want := make([]sccgraph.Vertex, n)

	for _, size := range []int{1, 2, 4} {
		got := runPipeline(t, n, edges, size)
		assert.Equal(t, want, got, "size=%d", size)
	}
}
