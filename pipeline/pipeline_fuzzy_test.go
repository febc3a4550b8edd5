package pipeline_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/genio"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/pipeline"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// buildFwGeneric builds a local forward CSR slice for any Partition
// implementation, via the interface alone (no static dispatch needed here
// since this runs once at fixture setup, never in FwBw's hot loop).
func buildFwGeneric(part partition.Partition, edges []sccgraph.Edge) ([]uint64, []sccgraph.Vertex) {
	localN := int(part.LocalN())
	adj := make([][]sccgraph.Vertex, localN)
	for _, e := range edges {
		if !part.HasLocal(e.From) {
			continue
		}
		k := int(part.ToLocal(e.From))
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

// runFuzzyWith runs the full pipeline over g under size ranks of partition
// type P, built by newPart(rank, size), and returns the global scc_id
// array indexed by global vertex id.
func runFuzzyWith[P partition.Partition](t *testing.T, g genio.Graph, newPart func(rank, size int) (P, error), size int) []sccgraph.Vertex {
	t.Helper()

	parts := make([]P, size)
	for r := 0; r < size; r++ {
		p, err := newPart(r, size)
		require.NoError(t, err)
		parts[r] = p
	}
	colls := collective.NewLocalCluster(size)

	global := make([]sccgraph.Vertex, g.N)

	gr, ctx := errgroup.WithContext(context.Background())
	for r := 0; r < size; r++ {
		r := r
		gr.Go(func() error {
			fwHead, fwCSR := buildFwGeneric(parts[r], g.Edges)
			bwHead, bwCSR, err := bidigraph.BuildBackward(ctx, parts[r], colls[r], fwHead, fwCSR)
			if err != nil {
				return err
			}
			gp := &bidigraph.BidiGraphPart{N: sccgraph.Vertex(g.N), FwHead: fwHead, FwCSR: fwCSR, BwHead: bwHead, BwCSR: bwCSR}

			sccID, err := pipeline.Run(ctx, gp, parts[r], colls[r])
			if err != nil {
				return err
			}
			for k := sccgraph.Vertex(0); k < parts[r].LocalN(); k++ {
				global[parts[r].ToGlobal(k)] = sccID[k]
			}

			return nil
		})
	}
	require.NoError(t, gr.Wait())

	return global
}

// TestPipelineScenarioE_FuzzySCCShapedGraphs runs the engine over random
// SCC-shaped graphs across four Partition variants (Slice, Balanced, Cyclic,
// BlockCyclic) and several rank counts,
// comparing scc_id against genio.SCCShaped's ground-truth oracle labeling.
func TestPipelineScenarioE_FuzzySCCShapedGraphs(t *testing.T) {
	seeds := []uint64{1, 2, 3, 4, 5}
	sizes := []int{1, 2, 3, 7}

	for _, seed := range seeds {
		g, err := genio.SCCShaped{}.Generate(context.Background(), 120, 2.5, seed)
		require.NoError(t, err)

		for _, size := range sizes {
			name := fmt.Sprintf("seed=%d/size=%d", seed, size)

			t.Run(name+"/Slice", func(t *testing.T) {
				got := runFuzzyWith(t, g, func(rank, sz int) (*partition.Slice, error) {
					return partition.NewSlice(sccgraph.Vertex(g.N), rank, sz)
				}, size)
				assert.Equal(t, g.Oracle, got)
			})

			t.Run(name+"/Balanced", func(t *testing.T) {
				got := runFuzzyWith(t, g, func(rank, sz int) (*partition.Balanced, error) {
					return partition.NewBalanced(sccgraph.Vertex(g.N), rank, sz)
				}, size)
				assert.Equal(t, g.Oracle, got)
			})

			t.Run(name+"/Cyclic", func(t *testing.T) {
				got := runFuzzyWith(t, g, func(rank, sz int) (*partition.Cyclic, error) {
					return partition.NewCyclic(sccgraph.Vertex(g.N), rank, sz)
				}, size)
				assert.Equal(t, g.Oracle, got)
			})

			t.Run(name+"/BlockCyclic", func(t *testing.T) {
				got := runFuzzyWith(t, g, func(rank, sz int) (*partition.BlockCyclic, error) {
					return partition.NewBlockCyclic(sccgraph.Vertex(g.N), 4, rank, sz)
				}, size)
				assert.Equal(t, g.Oracle, got)
			})
		}
	}
}
