package collective

import "context"

// PivotCandidate is the opaque (degree_product, vertex_id) pair reduced by
// AllReduceMaxPivot: winner has the greatest DegreeProduct, ties broken by
// the greatest VertexID (spec.md §4.5, §6, §9).
type PivotCandidate struct {
	DegreeProduct uint64
	VertexID      uint64
}

// CombineMaxPivot is the associative, commutative reduction operator used
// by AllReduceMaxPivot.
func CombineMaxPivot(a, b PivotCandidate) PivotCandidate {
	if a.DegreeProduct != b.DegreeProduct {
		if a.DegreeProduct > b.DegreeProduct {
			return a
		}

		return b
	}
	if a.VertexID >= b.VertexID {
		return a
	}

	return b
}

// Collective is the set of cluster-wide operations the engine's BSP rounds
// rely on. Every method blocks until every rank in the cluster has called
// the matching method for this round (spec.md §6 "Collective operations
// required").
type Collective interface {
	// Rank is this participant's index in [0, Size()).
	Rank() int
	// Size is the number of ranks, P.
	Size() int

	// Barrier blocks until every rank has called Barrier.
	Barrier(ctx context.Context) error

	// AllReduceSum returns the sum of v across all ranks.
	AllReduceSum(ctx context.Context, v uint64) (uint64, error)
	// AllReduceMin returns the minimum of v across all ranks.
	AllReduceMin(ctx context.Context, v uint64) (uint64, error)
	// AllReduceMaxPivot returns the CombineMaxPivot-reduction of v across
	// all ranks.
	AllReduceMaxPivot(ctx context.Context, v PivotCandidate) (PivotCandidate, error)

	// AllGather returns the ordered (by rank) slice of every rank's v.
	AllGather(ctx context.Context, v uint64) ([]uint64, error)
	// AllGatherV returns the ordered (by rank) slice of every rank's data.
	AllGatherV(ctx context.Context, data []byte) ([][]byte, error)

	// AllToAll exchanges one count per destination rank; counts[r] is how
	// many items this rank intends to send to rank r. The returned slice
	// is how many items this rank will receive from each source rank.
	AllToAll(ctx context.Context, counts []int) ([]int, error)

	// AllToAllV exchanges variable-size payloads. data is this rank's send
	// buffer, already partitioned contiguous-by-destination; counts[r] is
	// the number of fixed-size elements (of size elemSize) destined for
	// rank r, in the same order as data. It returns the concatenated
	// payload received from every source rank (order across sources is
	// unspecified, per spec.md §4.3 "no ordering guarantee") plus the
	// total number of elements received.
	AllToAllV(ctx context.Context, elemSize int, counts []int, data []byte) (recvData []byte, recvCount int, err error)
}
