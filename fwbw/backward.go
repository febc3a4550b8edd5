package fwbw

import (
	"context"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/bitset"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/frontier"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// BackwardSearch walks bw-edges from pivot. Every visited vertex whose
// fw_reached bit is set and whose scc_id is still undecided is committed to
// pivot (spec.md §4.5 "Backward search"); vertices reachable only backward
// are still traversed (to keep exploring ancestors) but never committed.
func BackwardSearch[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective, sccID sccgraph.SCCId, pivot sccgraph.Vertex, fwReached *bitset.Set) error {
	localN := g.LocalN()
	bwReached := bitset.New(localN)
	active := make([]int, 0, localN)

	// residual reports whether k still belongs to the undecided residual
	// from this search's point of view: either truly undecided, or already
	// committed to pivot earlier in this very round (not some other SCC).
	residual := func(k int) bool {
		return !sccID.Decided(k) || sccID[k] == pivot
	}

	commit := func(k int) {
		if fwReached.Get(k) && !sccID.Decided(k) {
			sccID[k] = pivot
		}
	}

	owner := func(v sccgraph.Vertex) int { return part.WorldRankOf(v) }
	fr := frontier.New[sccgraph.Vertex](frontier.VertexCodec{}, owner, part.WorldSize())

	if part.HasLocal(pivot) {
		k := int(part.ToLocal(pivot))
		bwReached.Set(k)
		commit(k)
		active = append(active, k)
	}

	for {
		for len(active) > 0 {
			k := active[len(active)-1]
			active = active[:len(active)-1]

			g.EachBwV(k, func(v sccgraph.Vertex) bool {
				if part.HasLocal(v) {
					lv := int(part.ToLocal(v))
					if !bwReached.Get(lv) && residual(lv) {
						bwReached.Set(lv)
						commit(lv)
						active = append(active, lv)
					}
				} else {
					fr.Push(part.WorldRankOf(v), v)
				}

				return true
			})
		}

		more, err := fr.Comm(ctx, coll)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		for fr.HasNext() {
			v := fr.Next()
			lv := int(part.ToLocal(v))
			if !bwReached.Get(lv) && residual(lv) {
				bwReached.Set(lv)
				commit(lv)
				active = append(active, lv)
			}
		}
	}
}
