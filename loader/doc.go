// Package loader defines the graph-loading collaborator interface (spec.md
// §6 "Collaborator interfaces"): something that produces a
// bidigraph.BidiGraphPart for a given Partition. The core pipeline never
// touches the file system itself — it only sees the decoded CSR a Loader
// hands it.
//
// InMemory is the only fully working implementation; it wraps a
// BidiGraphPart built ahead of time (by bidigraph.BuildBackward, a test
// fixture, or genio). FileManifest documents the shape of an on-disk,
// manifest-driven CSR loader but is intentionally unimplemented: on-disk
// loading is explicitly out of this engine's scope (spec.md §6 "Persisted
// state / on-disk").
package loader
