package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaspan-go/kaspan/frontier"
)

// item pairs a payload with its intended destination, so the test can
// verify Reorder both groups by rank and preserves the original multiset.
type item struct {
	id   int
	rank int
}

func ownerOf(it item) int { return it.rank }

func checkReordered(t *testing.T, items []item, counts []int) {
	t.Helper()

	displs := make([]int, len(counts)+1)
	for r, c := range counts {
		displs[r+1] = displs[r] + c
	}

	for r := 0; r < len(counts); r++ {
		for i := displs[r]; i < displs[r+1]; i++ {
			require.Equal(t, r, items[i].rank, "position %d should belong to rank %d bucket", i, r)
		}
	}
}

func TestReorderGroupsByRank(t *testing.T) {
	size := 4
	items := []item{
		{0, 3}, {1, 0}, {2, 2}, {3, 0}, {4, 1},
		{5, 3}, {6, 2}, {7, 0}, {8, 1}, {9, 2},
	}
	counts := make([]int, size)
	for _, it := range items {
		counts[it.rank]++
	}
	original := append([]item(nil), items...)

	frontier.Reorder(items, ownerOf, counts)

	checkReordered(t, items, counts)
	assert.ElementsMatch(t, original, items)
}

func TestReorderEmpty(t *testing.T) {
	var items []item
	counts := make([]int, 3)
	require.NotPanics(t, func() { frontier.Reorder(items, ownerOf, counts) })
}

func TestReorderSingleRank(t *testing.T) {
	items := []item{{0, 0}, {1, 0}, {2, 0}}
	counts := []int{3}
	original := append([]item(nil), items...)

	frontier.Reorder(items, ownerOf, counts)

	assert.ElementsMatch(t, original, items)
}

func TestReorderRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		size := 1 + rng.Intn(8)
		n := rng.Intn(200)

		items := make([]item, n)
		counts := make([]int, size)
		for i := range items {
			r := rng.Intn(size)
			items[i] = item{id: i, rank: r}
			counts[r]++
		}
		original := append([]item(nil), items...)

		frontier.Reorder(items, ownerOf, counts)

		checkReordered(t, items, counts)
		assert.ElementsMatch(t, original, items)
	}
}
