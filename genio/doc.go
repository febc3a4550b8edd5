// Package genio defines the synthetic-graph-generation collaborator
// interface (spec.md §6) used to build fuzzy test oracles (spec.md §8
// "Scenario E — fuzzy random digraphs").
//
// SCCShaped is the only implementation: it first partitions the vertex set
// into SCC-sized groups (sizes drawn from a log-normal distribution), wires
// each group into a single strongly connected cycle (no other intra-group
// edges), then adds inter-group edges that only point from an
// earlier-constructed group to a later one, so the condensation is
// acyclic by construction. The returned Oracle gives, for every vertex, the
// canonical label (its group's minimum vertex id) that a correct engine run
// must reproduce.
package genio
