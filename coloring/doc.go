// Package coloring implements the label-propagation residual solver that
// finishes off whatever FwBw leaves undecided (spec.md §4.6 "Coloring").
//
// Label propagation over both edge directions converges to a weakly
// connected grouping, not necessarily a strongly connected one, so a
// vertex's label alone cannot be trusted as its final scc_id. Run therefore
// finishes with a local Tarjan pass (tarjanOnLabelClass), restricted to
// forward edges, over every label group that provably never touches another
// rank: if no member of a group has any remote edge, the group's true SCC
// decomposition is entirely contained in this rank's local graph, because a
// weakly connected component spanning ranks must cross via at least one
// remote edge on some member. Groups that fail this test stay undecided for
// the next FwBw round.
package coloring
