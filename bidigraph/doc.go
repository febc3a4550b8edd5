// Package bidigraph implements BidiGraphPart: the partitioned bidirectional
// CSR representation of a directed graph that trim, fwbw, and coloring all
// operate on. Each rank stores the out-edges (fw) and in-edges (bw) of only
// the vertices it owns; neighbour ids may be local or remote (spec.md §3,
// §4.2).
//
// BuildBackward derives bw_head/bw_csr from fw_head/fw_csr by an all-to-all
// edge exchange: every rank emits the reversed pair (v, u) for each local
// edge u->v to owner(v), exactly as spec.md §4.2 describes. Loaders that
// already have both directions on disk can skip BuildBackward and construct
// a BidiGraphPart with both CSRs directly (see the loader package).
package bidigraph
