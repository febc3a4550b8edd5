package fwbw

import (
	"context"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// SelectPivot scans local undecided vertices for the (degree_product,
// global_id)-maximal candidate, ties broken by the larger global_id, then
// reduces across every rank (spec.md §4.5 "Pivot selection"). ok is false
// when no rank has any undecided vertex, signalling the pipeline is done.
func SelectPivot[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective, sccID sccgraph.SCCId) (pivot sccgraph.Vertex, ok bool, err error) {
	var best collective.PivotCandidate
	localUndecided := 0

	for k := 0; k < g.LocalN(); k++ {
		if sccID.Decided(k) {
			continue
		}
		localUndecided++

		cand := collective.PivotCandidate{
			DegreeProduct: uint64(g.OutDegree(k)) * uint64(g.InDegree(k)),
			VertexID:      part.ToGlobal(sccgraph.Vertex(k)),
		}
		best = collective.CombineMaxPivot(best, cand)
	}

	totalUndecided, err := coll.AllReduceSum(ctx, uint64(localUndecided))
	if err != nil {
		return 0, false, err
	}
	if totalUndecided == 0 {
		return 0, false, nil
	}

	winner, err := coll.AllReduceMaxPivot(ctx, best)
	if err != nil {
		return 0, false, err
	}

	return winner.VertexID, true, nil
}
