// Package collective defines the cluster-wide collective operations the
// engine needs (Barrier, Allreduce sum/min/custom-max, Allgather(v),
// Alltoall(v)) and ships one concrete implementation, LocalCluster, that
// runs P ranks as goroutines within a single process.
//
// A production deployment would swap Collective for a real MPI or
// gRPC-streaming-backed implementation; per spec.md §1/§6 that transport is
// an external collaborator and out of this repository's scope. LocalCluster
// exists so every other package (frontier, bidigraph, fwbw, trim, coloring,
// pipeline) has something concrete and fully working to run against, in
// tests and in `kaspanctl run`.
package collective
