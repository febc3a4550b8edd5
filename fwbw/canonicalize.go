package fwbw

import (
	"context"

	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// CanonicalizeLabel rewrites every local cell currently holding pivot to the
// true minimum global vertex id across the whole SCC, found by a single
// AllReduceMin over {to_global(k) : scc_id[k] == pivot} (or the Undecided
// sentinel, standing in for +infinity, when this rank has none) (spec.md
// §4.5 "Backward search").
func CanonicalizeLabel[P partition.Partition](ctx context.Context, part P, coll collective.Collective, sccID sccgraph.SCCId, pivot sccgraph.Vertex) (sccgraph.Vertex, error) {
	localMin := sccgraph.Undecided
	for k := 0; k < len(sccID); k++ {
		if sccID[k] != pivot {
			continue
		}
		if g := part.ToGlobal(sccgraph.Vertex(k)); g < localMin {
			localMin = g
		}
	}

	globalMin, err := coll.AllReduceMin(ctx, localMin)
	if err != nil {
		return 0, err
	}

	for k := 0; k < len(sccID); k++ {
		if sccID[k] == pivot {
			sccID[k] = globalMin
		}
	}

	return globalMin, nil
}
