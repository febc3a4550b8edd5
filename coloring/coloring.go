package coloring

import (
	"context"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/frontier"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

const pointerJumpBound = 64

// Run finalises every undecided vertex it can: label propagation over both
// edge directions to a weakly connected grouping, then a local Tarjan pass
// on every group that never touches another rank (spec.md §4.6). Groups
// that still have a member with a remote edge are left undecided for the
// caller's next FwBw round.
//
// Generic over P for the same reason as fwbw.Run: keeps Partition method
// calls statically resolved in the propagation hot loop (spec.md §9).
func Run[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective, sccID sccgraph.SCCId) error {
	localN := g.LocalN()
	label := make([]sccgraph.Vertex, localN)
	hasRemoteEdge := make([]bool, localN)

	for k := 0; k < localN; k++ {
		if sccID.Decided(k) {
			continue
		}
		label[k] = part.ToGlobal(sccgraph.Vertex(k))

		g.EachV(k, func(v sccgraph.Vertex) bool {
			if !part.HasLocal(v) {
				hasRemoteEdge[k] = true
			}

			return true
		})
		g.EachBwV(k, func(v sccgraph.Vertex) bool {
			if !part.HasLocal(v) {
				hasRemoteEdge[k] = true
			}

			return true
		})
	}

	owner := func(e frontier.LabelEdge) int { return part.WorldRankOf(e.Dst) }
	fr := frontier.New[frontier.LabelEdge](frontier.LabelEdgeCodec{}, owner, part.WorldSize())

	relax := func(k int, neighbourLabel sccgraph.Vertex) bool {
		if neighbourLabel < label[k] {
			label[k] = neighbourLabel

			return true
		}

		return false
	}

	for {
		var changedLocal uint64

		for k := 0; k < localN; k++ {
			if sccID.Decided(k) {
				continue
			}

			visit := func(v sccgraph.Vertex) bool {
				if part.HasLocal(v) {
					lv := int(part.ToLocal(v))
					if !sccID.Decided(lv) && relax(k, label[lv]) {
						changedLocal++
					}
				} else {
					fr.Push(part.WorldRankOf(v), frontier.LabelEdge{Dst: v, Label: label[k]})
				}

				return true
			}
			g.EachV(k, visit)
			g.EachBwV(k, visit)
		}

		for hop := 0; hop < pointerJumpBound; hop++ {
			anyJump := false
			for k := 0; k < localN; k++ {
				if sccID.Decided(k) {
					continue
				}
				target := label[k]
				if !part.HasLocal(target) {
					continue
				}
				lt := int(part.ToLocal(target))
				if sccID.Decided(lt) {
					continue
				}
				if relax(k, label[lt]) {
					anyJump = true
					changedLocal++
				}
			}
			if !anyJump {
				break
			}
		}

		if _, err := fr.Comm(ctx, coll); err != nil {
			return err
		}

		for fr.HasNext() {
			e := fr.Next()
			lk := int(part.ToLocal(e.Dst))
			if !sccID.Decided(lk) && relax(lk, e.Label) {
				changedLocal++
			}
		}

		globalChanged, err := coll.AllReduceSum(ctx, changedLocal)
		if err != nil {
			return err
		}

		// Every undecided vertex is re-scanned and its remote neighbours
		// re-pushed every round regardless of whether its label moved, so
		// fr.Comm's send-count all-reduce is never zero on its own once a
		// residual spans ranks. Convergence is judged by changedLocal
		// alone: once a round relaxes nothing anywhere, every further
		// round would just resend the same already-stable labels.
		if globalChanged == 0 {
			break
		}
	}

	groups := make(map[sccgraph.Vertex][]int)
	for k := 0; k < localN; k++ {
		if sccID.Decided(k) {
			continue
		}
		groups[label[k]] = append(groups[label[k]], k)
	}

	for _, members := range groups {
		isolated := true
		for _, k := range members {
			if hasRemoteEdge[k] {
				isolated = false

				break
			}
		}
		if !isolated {
			continue
		}

		for _, comp := range tarjanOnLabelClass(g, part, members) {
			root := sccgraph.Undecided
			for _, k := range comp {
				if gk := part.ToGlobal(sccgraph.Vertex(k)); gk < root {
					root = gk
				}
			}
			for _, k := range comp {
				sccID[k] = root
			}
		}
	}

	return nil
}
