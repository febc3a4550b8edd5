package trim

import (
	"context"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/frontier"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// decrementKind distinguishes which residual degree a cross-rank message
// decrements on its recipient.
type decrementKind uint8

const (
	decrementIn decrementKind = iota
	decrementOut
)

// message is the exhaustive trim's wire item: "target's residual in- or
// out-degree just lost one edge because the sender was decided."
type message struct {
	target sccgraph.Vertex
	kind   decrementKind
}

type messageCodec struct{}

func (messageCodec) Size() int { return 9 }

func (messageCodec) Encode(buf []byte, m message) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(m.target >> (8 * i))
	}
	buf[8] = byte(m.kind)
}

func (messageCodec) Decode(buf []byte) message {
	var target sccgraph.Vertex
	for i := 0; i < 8; i++ {
		target |= sccgraph.Vertex(buf[i]) << (8 * i)
	}

	return message{target: target, kind: decrementKind(buf[8])}
}

// Trim1ExhaustiveFirst iterates trim to a fixpoint: each round, every newly
// decided vertex decrements the residual degree of its neighbours (locally
// in place, remotely via a Frontier message to the neighbour's owner); any
// neighbour whose residual degree reaches zero joins the next round's
// buffer. Rounds alternate between two vertex buffers until the global sum
// of vertices decided in a round is zero (spec.md §4.4, §9 "exhaustive trim
// termination condition... this spec requires the global reduction").
func Trim1ExhaustiveFirst(ctx context.Context, g *bidigraph.BidiGraphPart, part partition.Partition, coll collective.Collective, sccID sccgraph.SCCId) (decided int, pivot collective.PivotCandidate, err error) {
	localN := g.LocalN()
	outDeg := make([]int, localN)
	inDeg := make([]int, localN)
	for k := 0; k < localN; k++ {
		outDeg[k] = g.OutDegree(k)
		inDeg[k] = g.InDegree(k)
	}

	owner := func(m message) int { return part.WorldRankOf(m.target) }
	fr := frontier.New[message](messageCodec{}, owner, part.WorldSize())

	current := make([]int, 0, localN)
	for k := 0; k < localN; k++ {
		if !sccID.Decided(k) && (outDeg[k] == 0 || inDeg[k] == 0) {
			current = append(current, k)
		}
	}

	totalDecided := 0

	for {
		var next []int
		roundDecided := 0

		decide := func(k int) {
			if sccID.Decided(k) {
				return
			}

			global := part.ToGlobal(sccgraph.Vertex(k))
			sccID[k] = global
			roundDecided++

			cand := collective.PivotCandidate{
				DegreeProduct: uint64(outDeg[k]) * uint64(inDeg[k]),
				VertexID:      global,
			}
			pivot = collective.CombineMaxPivot(pivot, cand)

			g.EachV(k, func(w sccgraph.Vertex) bool {
				if part.HasLocal(w) {
					lw := int(part.ToLocal(w))
					if !sccID.Decided(lw) {
						inDeg[lw]--
						if outDeg[lw] == 0 || inDeg[lw] == 0 {
							next = append(next, lw)
						}
					}
				} else {
					fr.Push(part.WorldRankOf(w), message{target: w, kind: decrementIn})
				}

				return true
			})

			g.EachBwV(k, func(w sccgraph.Vertex) bool {
				if part.HasLocal(w) {
					lw := int(part.ToLocal(w))
					if !sccID.Decided(lw) {
						outDeg[lw]--
						if outDeg[lw] == 0 || inDeg[lw] == 0 {
							next = append(next, lw)
						}
					}
				} else {
					fr.Push(part.WorldRankOf(w), message{target: w, kind: decrementOut})
				}

				return true
			})
		}

		for _, k := range current {
			decide(k)
		}

		if _, err := fr.Comm(ctx, coll); err != nil {
			return 0, collective.PivotCandidate{}, err
		}

		for fr.HasNext() {
			m := fr.Next()
			lw := int(part.ToLocal(m.target))
			if sccID.Decided(lw) {
				continue
			}
			switch m.kind {
			case decrementOut:
				outDeg[lw]--
			case decrementIn:
				inDeg[lw]--
			}
			if outDeg[lw] == 0 || inDeg[lw] == 0 {
				next = append(next, lw)
			}
		}

		totalDecided += roundDecided
		globalRoundDecided, err := coll.AllReduceSum(ctx, uint64(roundDecided))
		if err != nil {
			return 0, collective.PivotCandidate{}, err
		}
		if globalRoundDecided == 0 {
			break
		}

		current = next
	}

	return totalDecided, pivot, nil
}
