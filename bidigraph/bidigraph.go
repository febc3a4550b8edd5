package bidigraph

import (
	"errors"
	"fmt"

	"github.com/kaspan-go/kaspan/sccgraph"
)

// Sentinel errors for BidiGraphPart validation (spec.md §4.2 "Validation").
var (
	// ErrHeadNotMonotone indicates a head array that is not non-decreasing.
	ErrHeadNotMonotone = errors.New("bidigraph: head array is not non-decreasing")

	// ErrHeadLengthMismatch indicates a head array whose length disagrees
	// with local_n or whose terminal value disagrees with the CSR length.
	ErrHeadLengthMismatch = errors.New("bidigraph: head array length mismatch")

	// ErrCSREntryOutOfRange indicates a CSR neighbour id outside [0, N).
	ErrCSREntryOutOfRange = errors.New("bidigraph: csr entry out of range")
)

// BidiGraphPart is the partitioned bidirectional CSR for the vertices owned
// by one rank (spec.md §3 "BidiGraphPart").
type BidiGraphPart struct {
	N sccgraph.Vertex // total global vertex count

	FwHead []uint64          // length local_n+1, prefix sums of out-degrees
	FwCSR  []sccgraph.Vertex // length FwHead[local_n], concatenated out-neighbours

	BwHead []uint64          // length local_n+1, prefix sums of in-degrees
	BwCSR  []sccgraph.Vertex // length BwHead[local_n], concatenated in-neighbours
}

// LocalN returns the number of locally owned vertices.
func (g *BidiGraphPart) LocalN() int { return len(g.FwHead) - 1 }

// OutDegree returns the out-degree of local vertex k.
func (g *BidiGraphPart) OutDegree(k int) int { return int(g.FwHead[k+1] - g.FwHead[k]) }

// InDegree returns the in-degree of local vertex k.
func (g *BidiGraphPart) InDegree(k int) int { return int(g.BwHead[k+1] - g.BwHead[k]) }

// EachV visits every out-neighbour (global id) of local vertex k. Stops
// early if f returns false.
func (g *BidiGraphPart) EachV(k int, f func(v sccgraph.Vertex) bool) {
	for i := g.FwHead[k]; i < g.FwHead[k+1]; i++ {
		if !f(g.FwCSR[i]) {
			return
		}
	}
}

// EachBwV visits every in-neighbour (global id) of local vertex k. Stops
// early if f returns false.
func (g *BidiGraphPart) EachBwV(k int, f func(v sccgraph.Vertex) bool) {
	for i := g.BwHead[k]; i < g.BwHead[k+1]; i++ {
		if !f(g.BwCSR[i]) {
			return
		}
	}
}

// Validate checks the invariants from spec.md §4.2: head arrays are
// non-decreasing and agree with their CSR length, and every CSR entry is in
// range. It does not check that Bw is the global edge-reverse of Fw (that
// requires cross-rank knowledge; see BuildBackward, which establishes it by
// construction). Intended for debug builds / tests, not the hot path.
func (g *BidiGraphPart) Validate() error {
	if err := validateHead(g.FwHead, len(g.FwCSR)); err != nil {
		return fmt.Errorf("fw: %w", err)
	}
	if err := validateHead(g.BwHead, len(g.BwCSR)); err != nil {
		return fmt.Errorf("bw: %w", err)
	}
	if len(g.BwHead) != len(g.FwHead) {
		return fmt.Errorf("bw: %w: %d entries, want local_n+1 = %d", ErrHeadLengthMismatch, len(g.BwHead), len(g.FwHead))
	}
	for _, v := range g.FwCSR {
		if v >= g.N {
			return fmt.Errorf("fw: %w: %d >= %d", ErrCSREntryOutOfRange, v, g.N)
		}
	}
	for _, v := range g.BwCSR {
		if v >= g.N {
			return fmt.Errorf("bw: %w: %d >= %d", ErrCSREntryOutOfRange, v, g.N)
		}
	}

	return nil
}

func validateHead(head []uint64, csrLen int) error {
	if len(head) == 0 {
		return fmt.Errorf("%w: empty head array", ErrHeadLengthMismatch)
	}
	if head[0] != 0 {
		return fmt.Errorf("%w: head[0] = %d, want 0", ErrHeadLengthMismatch, head[0])
	}
	if int(head[len(head)-1]) != csrLen {
		return fmt.Errorf("%w: head[last] = %d, csr length = %d", ErrHeadLengthMismatch, head[len(head)-1], csrLen)
	}
	for i := 1; i < len(head); i++ {
		if head[i] < head[i-1] {
			return fmt.Errorf("%w: at index %d", ErrHeadNotMonotone, i)
		}
	}

	return nil
}
