package pipeline

import (
	"context"
	"time"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/coloring"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/fwbw"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
	"github.com/kaspan-go/kaspan/telemetry"
	"github.com/kaspan-go/kaspan/trim"
)

// Run computes scc_id for every locally owned vertex of g, coordinating
// with every other rank in coll via part's partitioning (spec.md §4.7).
func Run[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective) (sccgraph.SCCId, error) {
	return RunWithTelemetry(ctx, g, part, coll, telemetry.NoopSink{})
}

// RunWithTelemetry is Run, reporting phase entries, per-round decided
// counts, and phase durations to sink. Every rank in coll should be given
// the same kind of sink (cmd/kaspanctl shares one PrometheusSink across an
// entire LocalCluster); NoopSink costs nothing when telemetry isn't wanted.
func RunWithTelemetry[P partition.Partition](ctx context.Context, g *bidigraph.BidiGraphPart, part P, coll collective.Collective, sink telemetry.Sink) (sccgraph.SCCId, error) {
	n := g.N
	sccID := sccgraph.NewSCCId(g.LocalN())

	if n == 0 {
		return sccID, nil
	}

	sink.Phase("trim")
	trimStart := time.Now()
	decidedBefore := sccID.CountDecided()
	if _, _, err := trim.Trim1ExhaustiveFirst(ctx, g, part, coll, sccID); err != nil {
		return nil, err
	}
	sink.Duration("trim", time.Since(trimStart))
	sink.Decided(uint64(sccID.CountDecided() - decidedBefore))

	if done, err := allDecided(ctx, coll, sccID, n); err != nil {
		return nil, err
	} else if done {
		return sccID, nil
	}

	maxRounds := int(n) + 1
	for round := 0; round < maxRounds; round++ {
		sink.Phase("fwbw")
		fwbwStart := time.Now()
		decidedBefore := sccID.CountDecided()
		decided, _, err := fwbw.Run(ctx, g, part, coll, sccID)
		if err != nil {
			return nil, err
		}
		sink.Duration("fwbw", time.Since(fwbwStart))
		sink.Decided(uint64(sccID.CountDecided() - decidedBefore))
		if !decided {
			// No rank has any undecided vertex left.
			break
		}
		if done, err := allDecided(ctx, coll, sccID, n); err != nil {
			return nil, err
		} else if done {
			return sccID, nil
		}

		sink.Phase("coloring")
		coloringStart := time.Now()
		decidedBefore = sccID.CountDecided()
		if err := coloring.Run(ctx, g, part, coll, sccID); err != nil {
			return nil, err
		}
		sink.Duration("coloring", time.Since(coloringStart))
		sink.Decided(uint64(sccID.CountDecided() - decidedBefore))
		if done, err := allDecided(ctx, coll, sccID, n); err != nil {
			return nil, err
		} else if done {
			return sccID, nil
		}
	}

	return sccID, nil
}

func allDecided(ctx context.Context, coll collective.Collective, sccID sccgraph.SCCId, n sccgraph.Vertex) (bool, error) {
	total, err := coll.AllReduceSum(ctx, uint64(sccID.CountDecided()))
	if err != nil {
		return false, err
	}

	return total == uint64(n), nil
}
