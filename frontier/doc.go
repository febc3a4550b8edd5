// Package frontier implements Frontier[T]: the bulk-synchronous,
// multi-destination work queue that every cross-rank propagation in this
// engine is built on (spec.md §3 "Entities", §4.3 "Frontier").
//
// A Frontier buffers two kinds of pending work: items pushed to a remote
// rank (send buffer, logically bucketed by destination via send_counts) and
// items ready for local consumption (recv buffer, stack discipline). Comm
// performs one BSP round: an all-reduce convergence check, an in-place
// partition-by-rank of the send buffer (see Reorder), and an Alltoallv_c
// exchange that appends arrivals to the recv buffer.
//
// T is encoded to and from a fixed-size wire representation via Codec[T],
// keeping the underlying collective.Collective byte-oriented regardless of
// which item type (vertex_t or edge_t) a component needs.
package frontier
