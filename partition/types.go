package partition

import (
	"errors"
	"fmt"

	"github.com/kaspan-go/kaspan/sccgraph"
)

// Sentinel errors for partition construction.
var (
	// ErrInvalidWorldSize indicates a non-positive rank count.
	ErrInvalidWorldSize = errors.New("partition: world size must be positive")

	// ErrInvalidWorldRank indicates a rank outside [0, size).
	ErrInvalidWorldRank = errors.New("partition: world rank out of range")

	// ErrInvalidBlockSize indicates a non-positive block size for BlockCyclic.
	ErrInvalidBlockSize = errors.New("partition: block size must be positive")

	// ErrBoundsMismatch indicates a Continuous partition whose begin/end
	// pairs are not monotone, overlapping, or don't sum to N.
	ErrBoundsMismatch = errors.New("partition: begin/end bounds are inconsistent")
)

// Partition maps global vertex ids to (rank, local index) and back.
//
// ToLocal(u) is defined only when HasLocal(u) is true; calling it otherwise
// is a contract violation (spec.md §4.1 "Failure") and panics. ToGlobal(k)
// is defined only for k < LocalN().
type Partition interface {
	// N is the total number of global vertices.
	N() sccgraph.Vertex
	// LocalN is the number of vertices owned by this rank.
	LocalN() sccgraph.Vertex
	// WorldRank is this rank's index in [0, WorldSize()).
	WorldRank() int
	// WorldSize is the number of ranks, P.
	WorldSize() int
	// HasLocal reports whether u is owned by this rank.
	HasLocal(u sccgraph.Vertex) bool
	// ToLocal converts a global id owned by this rank to a local index.
	// Panics if HasLocal(u) is false.
	ToLocal(u sccgraph.Vertex) sccgraph.Vertex
	// ToGlobal converts a local index on this rank to a global id.
	// Panics if k >= LocalN().
	ToGlobal(k sccgraph.Vertex) sccgraph.Vertex
	// WorldRankOf returns the owning rank of any global vertex u.
	WorldRankOf(u sccgraph.Vertex) int
}

// Bounded is implemented by contiguous Partition variants, letting a loader
// slice a CSR file without any cross-rank coordination.
type Bounded interface {
	Partition
	Begin() sccgraph.Vertex
	End() sccgraph.Vertex
}

// Ordered is a marker interface: ToGlobal is monotone increasing in k.
type Ordered interface {
	Partition
	ordered()
}

func checkWorldSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorldSize, size)
	}

	return nil
}

func checkWorldRank(rank, size int) error {
	if rank < 0 || rank >= size {
		return fmt.Errorf("%w: rank %d, size %d", ErrInvalidWorldRank, rank, size)
	}

	return nil
}

func panicNotLocal(u sccgraph.Vertex, rank int) {
	panic(fmt.Sprintf("partition: to_local(%d) called on rank %d which does not own it", u, rank))
}

func panicLocalOOB(k sccgraph.Vertex, localN sccgraph.Vertex, rank int) {
	panic(fmt.Sprintf("partition: to_global(%d) out of range (local_n=%d) on rank %d", k, localN, rank))
}
