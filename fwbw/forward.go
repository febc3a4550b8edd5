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

// ForwardSearch marks every undecided vertex reachable from pivot via
// out-edges, crossing rank boundaries through a vertex Frontier, and
// returns the resulting local bitset (spec.md §4.5 "Forward search").
//
// ForwardSearch is generic over the concrete Partition implementation so
// that part's method calls in this hot loop are resolved statically rather
// than through an interface vtable (spec.md §9 "Heterogeneous Partition
// types... what must not leak is dynamic dispatch into the hot inner loops
// of FwBw").
func ForwardSearch[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective, sccID sccgraph.SCCId, pivot sccgraph.Vertex) (*bitset.Set, error) {
	localN := g.LocalN()
	reached := bitset.New(localN)
	active := make([]int, 0, localN)

	owner := func(v sccgraph.Vertex) int { return part.WorldRankOf(v) }
	fr := frontier.New[sccgraph.Vertex](frontier.VertexCodec{}, owner, part.WorldSize())

	if part.HasLocal(pivot) {
		k := int(part.ToLocal(pivot))
		if !sccID.Decided(k) {
			reached.Set(k)
			active = append(active, k)
		}
	}

	for {
		for len(active) > 0 {
			k := active[len(active)-1]
			active = active[:len(active)-1]

			g.EachV(k, func(v sccgraph.Vertex) bool {
				if part.HasLocal(v) {
					lv := int(part.ToLocal(v))
					if !sccID.Decided(lv) && !reached.Get(lv) {
						reached.Set(lv)
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
			return nil, err
		}
		if !more {
			return reached, nil
		}

		for fr.HasNext() {
			v := fr.Next()
			lv := int(part.ToLocal(v))
			if !sccID.Decided(lv) && !reached.Get(lv) {
				reached.Set(lv)
				active = append(active, lv)
			}
		}
	}
}
