package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// buildAll constructs one Partition per rank for a given variant name,
// n, and world size.
func buildAll(t *testing.T, variant string, n sccgraph.Vertex, size int) []partition.Partition {
	t.Helper()

	parts := make([]partition.Partition, size)
	switch variant {
	case "slice":
		for r := 0; r < size; r++ {
			p, err := partition.NewSlice(n, r, size)
			require.NoError(t, err)
			parts[r] = p
		}
	case "balanced":
		for r := 0; r < size; r++ {
			p, err := partition.NewBalanced(n, r, size)
			require.NoError(t, err)
			parts[r] = p
		}
	case "cyclic":
		for r := 0; r < size; r++ {
			p, err := partition.NewCyclic(n, r, size)
			require.NoError(t, err)
			parts[r] = p
		}
	case "blockcyclic":
		for r := 0; r < size; r++ {
			p, err := partition.NewBlockCyclic(n, 3, r, size)
			require.NoError(t, err)
			parts[r] = p
		}
	case "continuous":
		// Build balanced bounds, then wrap as Continuous.
		begins := make([]sccgraph.Vertex, size)
		ends := make([]sccgraph.Vertex, size)
		for r := 0; r < size; r++ {
			b, err := partition.NewBalanced(n, r, size)
			require.NoError(t, err)
			begins[r], ends[r] = b.Begin(), b.End()
		}
		for r := 0; r < size; r++ {
			p, err := partition.NewContinuous(n, begins, ends, r)
			require.NoError(t, err)
			parts[r] = p
		}
	default:
		t.Fatalf("unknown variant %q", variant)
	}

	return parts
}

func TestBijectionAcrossVariants(t *testing.T) {
	variants := []string{"slice", "balanced", "cyclic", "blockcyclic", "continuous"}
	sizes := []int{1, 2, 3, 7}
	ns := []sccgraph.Vertex{0, 1, 7, 32, 100}

	for _, variant := range variants {
		for _, size := range sizes {
			for _, n := range ns {
				parts := buildAll(t, variant, n, size)

				owner := make([]int, n)
				seen := make([]bool, n)
				for r, p := range parts {
					assert.Equal(t, n, p.N())
					var total sccgraph.Vertex
					for k := sccgraph.Vertex(0); k < p.LocalN(); k++ {
						g := p.ToGlobal(k)
						require.Less(t, g, n)
						require.False(t, seen[g], "variant=%s size=%d n=%d: vertex %d claimed twice", variant, size, n, g)
						seen[g] = true
						owner[g] = r
						assert.Equal(t, k, p.ToLocal(g))
						assert.True(t, p.HasLocal(g))
						assert.Equal(t, r, p.WorldRankOf(g))
						total++
					}
					assert.Equal(t, p.LocalN(), total)
				}
				for u := sccgraph.Vertex(0); u < n; u++ {
					require.True(t, seen[u], "variant=%s size=%d n=%d: vertex %d never owned", variant, size, n, u)
					assert.Equal(t, owner[u], parts[owner[u]].WorldRankOf(u))
				}
			}
		}
	}
}

func TestSliceLastRankTakesShortRemainder(t *testing.T) {
	parts := buildAll(t, "slice", 10, 3)
	assert.Equal(t, sccgraph.Vertex(4), parts[0].LocalN())
	assert.Equal(t, sccgraph.Vertex(4), parts[1].LocalN())
	assert.Equal(t, sccgraph.Vertex(2), parts[2].LocalN())
}

func TestBalancedSizesDifferByAtMostOne(t *testing.T) {
	parts := buildAll(t, "balanced", 10, 3)
	sizes := make([]sccgraph.Vertex, len(parts))
	for i, p := range parts {
		sizes[i] = p.LocalN()
	}
	min, max := sizes[0], sizes[0]
	for _, s := range sizes {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	assert.LessOrEqual(t, max-min, sccgraph.Vertex(1))
}

func TestOrderedMarker(t *testing.T) {
	s, err := partition.NewSlice(10, 0, 2)
	require.NoError(t, err)
	var _ partition.Ordered = s

	b, err := partition.NewBalanced(10, 0, 2)
	require.NoError(t, err)
	var _ partition.Ordered = b

	c, err := partition.NewContinuous(10, []sccgraph.Vertex{0, 5}, []sccgraph.Vertex{5, 10}, 0)
	require.NoError(t, err)
	var _ partition.Ordered = c
}

func TestBoundedMarker(t *testing.T) {
	s, err := partition.NewSlice(10, 0, 2)
	require.NoError(t, err)
	var _ partition.Bounded = s
	assert.Equal(t, sccgraph.Vertex(0), s.Begin())
	assert.Equal(t, sccgraph.Vertex(5), s.End())
}

func TestToLocalContractViolationPanics(t *testing.T) {
	p, err := partition.NewSlice(10, 0, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { p.ToLocal(9) }) // owned by rank 1
}

func TestToGlobalOutOfRangePanics(t *testing.T) {
	p, err := partition.NewSlice(10, 0, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { p.ToGlobal(p.LocalN()) })
}

func TestInvalidConstruction(t *testing.T) {
	_, err := partition.NewSlice(10, 0, 0)
	require.ErrorIs(t, err, partition.ErrInvalidWorldSize)

	_, err = partition.NewSlice(10, 5, 3)
	require.ErrorIs(t, err, partition.ErrInvalidWorldRank)

	_, err = partition.NewBlockCyclic(10, 0, 0, 3)
	require.ErrorIs(t, err, partition.ErrInvalidBlockSize)
}

func TestCyclicLocalIndices(t *testing.T) {
	parts := buildAll(t, "cyclic", 7, 3)
	// rank0: 0,3,6 ; rank1: 1,4 ; rank2: 2,5
	assert.Equal(t, sccgraph.Vertex(3), parts[0].LocalN())
	assert.Equal(t, sccgraph.Vertex(2), parts[1].LocalN())
	assert.Equal(t, sccgraph.Vertex(2), parts[2].LocalN())
	assert.Equal(t, sccgraph.Vertex(6), parts[0].ToGlobal(2))
}

func TestBlockCyclicEmptyRankWhenMoreRanksThanBlocks(t *testing.T) {
	p, err := partition.NewBlockCyclic(4, 2, 3, 4) // blocks: [0,2) [2,4) -> only ranks 0,1 get a block
	require.NoError(t, err)
	assert.Equal(t, sccgraph.Vertex(0), p.LocalN())
}
