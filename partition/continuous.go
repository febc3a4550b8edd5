package partition

import "github.com/kaspan-go/kaspan/sccgraph"

// Continuous assigns each rank an explicit [begin, end) range. Unlike Slice
// and Balanced, the ranges are supplied by the caller — typically decoded
// from a manifest — rather than computed from n and P, so they need not be
// equal-sized. They must tile [0, N) in rank order (begins[0] == 0,
// begins[r] == ends[r-1], ends[P-1] == N); NewContinuous rejects any other
// layout, and WorldRankOf relies on it.
//
// NewContinuousSorted builds the degenerate-but-common case where only the
// per-rank `end` offsets are known (begin is inferred as the previous
// rank's end), matching spec.md §3's "sorted variant replicates only `end`
// per rank".
type Continuous struct {
	n          sccgraph.Vertex
	ends       []sccgraph.Vertex // ends[r] is the exclusive end of rank r; ends[r-1] is begin of r
	rank, size int
}

// NewContinuous builds a Continuous partition from explicit per-rank
// [begin, end) pairs. All P pairs must be supplied (every rank must know
// every other rank's bounds to resolve WorldRankOf).
func NewContinuous(n sccgraph.Vertex, begins, ends []sccgraph.Vertex, rank int) (*Continuous, error) {
	size := len(ends)
	if err := checkWorldSize(size); err != nil {
		return nil, err
	}
	if err := checkWorldRank(rank, size); err != nil {
		return nil, err
	}
	if len(begins) != size {
		return nil, ErrBoundsMismatch
	}
	for r := 0; r < size; r++ {
		if begins[r] > ends[r] {
			return nil, ErrBoundsMismatch
		}
		if r > 0 && begins[r] != ends[r-1] {
			return nil, ErrBoundsMismatch
		}
		if r == 0 && begins[0] != 0 {
			return nil, ErrBoundsMismatch
		}
	}
	if size > 0 && ends[size-1] != n {
		return nil, ErrBoundsMismatch
	}

	return &Continuous{n: n, ends: append([]sccgraph.Vertex(nil), ends...), rank: rank, size: size}, nil
}

// NewContinuousSorted builds a Continuous partition from only the per-rank
// `end` offsets (ends must be non-decreasing with ends[size-1] == n).
func NewContinuousSorted(n sccgraph.Vertex, ends []sccgraph.Vertex, rank int) (*Continuous, error) {
	size := len(ends)
	begins := make([]sccgraph.Vertex, size)
	for r := 1; r < size; r++ {
		begins[r] = ends[r-1]
	}

	return NewContinuous(n, begins, ends, rank)
}

func (c *Continuous) N() sccgraph.Vertex { return c.n }

func (c *Continuous) begin(r int) sccgraph.Vertex {
	if r == 0 {
		return 0
	}

	return c.ends[r-1]
}

func (c *Continuous) LocalN() sccgraph.Vertex { return c.End() - c.Begin() }
func (c *Continuous) WorldRank() int          { return c.rank }
func (c *Continuous) WorldSize() int          { return c.size }
func (c *Continuous) Begin() sccgraph.Vertex  { return c.begin(c.rank) }
func (c *Continuous) End() sccgraph.Vertex    { return c.ends[c.rank] }

func (c *Continuous) HasLocal(u sccgraph.Vertex) bool {
	return u >= c.Begin() && u < c.End()
}

func (c *Continuous) ToLocal(u sccgraph.Vertex) sccgraph.Vertex {
	if !c.HasLocal(u) {
		panicNotLocal(u, c.rank)
	}

	return u - c.Begin()
}

func (c *Continuous) ToGlobal(k sccgraph.Vertex) sccgraph.Vertex {
	if k >= c.LocalN() {
		panicLocalOOB(k, c.LocalN(), c.rank)
	}

	return c.Begin() + k
}

func (c *Continuous) WorldRankOf(u sccgraph.Vertex) int {
	// Ranks are assumed sorted by range, so a binary search over ends
	// locates the first rank whose end exceeds u.
	lo, hi := 0, c.size-1
	for lo < hi {
		mid := (lo + hi) / 2
		if c.ends[mid] > u {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

func (c *Continuous) ordered() {}
