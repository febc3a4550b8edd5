package genio

import (
	"context"
	"math"
	"math/rand"

	"github.com/kaspan-go/kaspan/sccgraph"
)

// Graph is a fully-materialized generated digraph plus the oracle SCC
// labeling a correct engine run must reproduce. Oracle[v] is the minimum
// vertex id within v's constructed SCC, matching pipeline.Run's own
// canonicalization convention (the lowest global id in a component becomes
// its scc_id).
type Graph struct {
	N      int
	Edges  []sccgraph.Edge
	Oracle []sccgraph.Vertex
}

// Generator produces a synthetic digraph of n vertices at roughly
// avgDegree outgoing edges per vertex, deterministically from seed.
type Generator interface {
	Generate(ctx context.Context, n int, avgDegree float64, seed uint64) (Graph, error)
}

// SCCShaped builds graphs with known ground truth: it partitions the vertex
// set into SCC-sized groups (log-normal sizes), wires each group into a
// single strongly connected cycle, then scatters additional edges only from
// an earlier-constructed group to a later one so the condensation stays
// acyclic by construction. It serves as the fuzzy test oracle (spec.md §8
// "Scenario E") and as the graph source of `kaspanctl run`; the engine
// packages themselves never call it.
type SCCShaped struct{}

// Generate implements Generator. n == 0 returns an empty Graph. ctx is
// accepted for interface-compatibility with a future distributed generator
// but this implementation never blocks.
func (SCCShaped) Generate(_ context.Context, n int, avgDegree float64, seed uint64) (Graph, error) {
	if n <= 0 {
		return Graph{}, nil
	}

	rng := rand.New(rand.NewSource(int64(seed)))

	groups := buildGroups(rng, n)

	oracle := make([]sccgraph.Vertex, n)
	var edges []sccgraph.Edge
	for _, members := range groups {
		root := sccgraph.Vertex(members[0])
		for _, v := range members {
			if sccgraph.Vertex(v) < root {
				root = sccgraph.Vertex(v)
			}
		}
		for _, v := range members {
			oracle[v] = root
		}
		edges = append(edges, cycleEdges(rng, members)...)
	}

	edges = append(edges, condensationEdges(rng, groups, n, avgDegree, len(edges))...)

	return Graph{N: n, Edges: edges, Oracle: oracle}, nil
}

// buildGroups partitions [0, n) into consecutively-numbered groups, each a
// candidate SCC, with sizes drawn from a log-normal distribution so most
// groups are small with an occasional large one.
func buildGroups(rng *rand.Rand, n int) [][]int {
	var groups [][]int
	next := 0
	for next < n {
		size := lognormalSize(rng, n-next)
		members := make([]int, size)
		for i := 0; i < size; i++ {
			members[i] = next
			next++
		}
		groups = append(groups, members)
	}

	return groups
}

func lognormalSize(rng *rand.Rand, remaining int) int {
	size := int(math.Round(math.Exp(rng.NormFloat64() * 0.6)))
	if size < 1 {
		size = 1
	}
	if size > remaining {
		size = remaining
	}

	return size
}

// cycleEdges wires members into a single directed cycle in random order,
// the minimal edge set that makes a group strongly connected.
func cycleEdges(rng *rand.Rand, members []int) []sccgraph.Edge {
	if len(members) < 2 {
		return nil
	}

	order := append([]int(nil), members...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	edges := make([]sccgraph.Edge, len(order))
	for i, from := range order {
		to := order[(i+1)%len(order)]
		edges[i] = sccgraph.Edge{From: sccgraph.Vertex(from), To: sccgraph.Vertex(to)}
	}

	return edges
}

// condensationEdges adds edges from an earlier group to a strictly later
// one (by construction order), never the reverse, so the inter-group
// condensation graph is acyclic and no new SCC is created across groups.
func condensationEdges(rng *rand.Rand, groups [][]int, n int, avgDegree float64, alreadyPlaced int) []sccgraph.Edge {
	if len(groups) < 2 {
		return nil
	}

	budget := int(avgDegree*float64(n)) - alreadyPlaced
	if budget <= 0 {
		return nil
	}

	edges := make([]sccgraph.Edge, 0, budget)
	for i := 0; i < budget; i++ {
		gi := rng.Intn(len(groups) - 1)
		gj := gi + 1 + rng.Intn(len(groups)-gi-1)
		from := groups[gi][rng.Intn(len(groups[gi]))]
		to := groups[gj][rng.Intn(len(groups[gj]))]
		edges = append(edges, sccgraph.Edge{From: sccgraph.Vertex(from), To: sccgraph.Vertex(to)})
	}

	return edges
}
