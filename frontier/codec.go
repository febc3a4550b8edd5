package frontier

import (
	"encoding/binary"

	"github.com/kaspan-go/kaspan/sccgraph"
)

// Codec encodes and decodes a fixed-size wire representation of T, the unit
// exchanged by a Frontier's Alltoallv_c round (spec.md §9 "Frontier
// parameterised by item type").
type Codec[T any] interface {
	// Size is the fixed number of bytes one encoded T occupies.
	Size() int
	// Encode writes item into buf, which has length Size().
	Encode(buf []byte, item T)
	// Decode reads one T out of buf, which has length Size().
	Decode(buf []byte) T
}

// VertexCodec encodes a bare vertex_t (one global id), as used by fwbw's
// reachability frontiers.
type VertexCodec struct{}

func (VertexCodec) Size() int { return 8 }

func (VertexCodec) Encode(buf []byte, item sccgraph.Vertex) {
	binary.LittleEndian.PutUint64(buf, item)
}

func (VertexCodec) Decode(buf []byte) sccgraph.Vertex {
	return binary.LittleEndian.Uint64(buf)
}

// LabelEdge is edge_t = (dst_global, candidate_label), the unit coloring's
// label-propagation frontier exchanges (spec.md §4.4, §4.6).
type LabelEdge struct {
	Dst   sccgraph.Vertex
	Label sccgraph.Vertex
}

// LabelEdgeCodec encodes a LabelEdge as two little-endian uint64s.
type LabelEdgeCodec struct{}

func (LabelEdgeCodec) Size() int { return 16 }

func (LabelEdgeCodec) Encode(buf []byte, item LabelEdge) {
	binary.LittleEndian.PutUint64(buf[0:8], item.Dst)
	binary.LittleEndian.PutUint64(buf[8:16], item.Label)
}

func (LabelEdgeCodec) Decode(buf []byte) LabelEdge {
	return LabelEdge{
		Dst:   binary.LittleEndian.Uint64(buf[0:8]),
		Label: binary.LittleEndian.Uint64(buf[8:16]),
	}
}
