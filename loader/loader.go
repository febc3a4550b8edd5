package loader

import (
	"context"
	"errors"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/partition"
)

// ErrNotImplemented is returned by collaborator surfaces this repository
// documents at the interface level but does not implement, per spec.md §6's
// explicit on-disk-loading boundary.
var ErrNotImplemented = errors.New("loader: not implemented")

// Loader produces the locally-owned slice of a graph for part, already
// decoded into bw/fw CSR form.
type Loader interface {
	Load(ctx context.Context, part partition.Partition) (bidigraph.BidiGraphPart, error)
}

// InMemory adapts an already-built BidiGraphPart into a Loader, for tests
// and callers that construct the graph programmatically (e.g. genio).
type InMemory struct {
	Graph bidigraph.BidiGraphPart
}

// Load returns g.Graph unconditionally; part is accepted only to satisfy
// Loader's signature, since the graph was already partitioned by whoever
// built it.
func (l InMemory) Load(_ context.Context, _ partition.Partition) (bidigraph.BidiGraphPart, error) {
	return l.Graph, nil
}

// ManifestEntry describes one rank's on-disk CSR slice: byte offsets into
// shared fw/bw CSR files, plus the wire element width and endianness, the
// way a real cluster deployment would need to describe a pre-partitioned
// dataset sitting on a shared filesystem.
type ManifestEntry struct {
	Rank          int
	FwHeadOffset  int64
	FwCSROffset   int64
	BwHeadOffset  int64
	BwCSROffset   int64
	ElementWidth  int // bytes per CSR entry (4 or 8)
	LittleEndian  bool
	LocalVertices uint64
}

// FileManifest documents the shape of an on-disk, manifest-driven loader:
// a path to the CSR files plus one ManifestEntry per rank. Decoding
// arbitrary on-disk CSR variants is explicitly out of scope (spec.md §6);
// Load always fails with ErrNotImplemented.
type FileManifest struct {
	FwHeadPath string
	FwCSRPath  string
	BwHeadPath string
	BwCSRPath  string
	Entries    []ManifestEntry
}

func (FileManifest) Load(context.Context, partition.Partition) (bidigraph.BidiGraphPart, error) {
	return bidigraph.BidiGraphPart{}, ErrNotImplemented
}
