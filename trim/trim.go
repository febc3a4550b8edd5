package trim

import (
	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// Trim1First scans every local vertex once and decides the singleton SCCs
// that are already trivial in the input graph: outdegree(k) == 0 or
// indegree(k) == 0 (spec.md §4.4). It performs no communication; a vertex
// trivial only after a neighbour elsewhere is removed needs
// Trim1ExhaustiveFirst to be found.
//
// Returns the number of vertices decided and the best (degree_product,
// vertex_id) pivot candidate seen locally, for later AllReduceMaxPivot.
func Trim1First(g *bidigraph.BidiGraphPart, part partition.Partition, sccID sccgraph.SCCId) (decided int, pivot collective.PivotCandidate) {
	for k := 0; k < g.LocalN(); k++ {
		if sccID.Decided(k) {
			continue
		}

		outDeg, inDeg := g.OutDegree(k), g.InDegree(k)
		if outDeg != 0 && inDeg != 0 {
			continue
		}

		global := part.ToGlobal(sccgraph.Vertex(k))
		sccID[k] = global
		decided++

		cand := collective.PivotCandidate{
			DegreeProduct: uint64(outDeg) * uint64(inDeg),
			VertexID:      global,
		}
		pivot = collective.CombineMaxPivot(pivot, cand)
	}

	return decided, pivot
}
