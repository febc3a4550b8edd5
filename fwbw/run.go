package fwbw

import (
	"context"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// Run sequences one full FwBw round: pivot selection, forward search,
// backward search, and label canonicalization. decided is false only when
// every rank reports no undecided vertex, at which point the pipeline is
// finished and pivot is meaningless.
func Run[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective, sccID sccgraph.SCCId) (decided bool, pivot sccgraph.Vertex, err error) {
	pivot, ok, err := SelectPivot(ctx, g, part, coll, sccID)
	if err != nil || !ok {
		return false, 0, err
	}

	fwReached, err := ForwardSearch(ctx, g, part, coll, sccID, pivot)
	if err != nil {
		return false, 0, err
	}

	if err := BackwardSearch(ctx, g, part, coll, sccID, pivot, fwReached); err != nil {
		return false, 0, err
	}

	canonical, err := CanonicalizeLabel(ctx, part, coll, sccID, pivot)
	if err != nil {
		return false, 0, err
	}

	return true, canonical, nil
}
