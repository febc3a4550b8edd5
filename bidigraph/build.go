package bidigraph

import (
	"context"
	"encoding/binary"

	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// edgeElemSize is the fixed wire size of one (dst, src) edge pair: two
// uint64 values, little-endian.
const edgeElemSize = 16

func encodeEdge(buf []byte, dst, src sccgraph.Vertex) {
	binary.LittleEndian.PutUint64(buf[0:8], dst)
	binary.LittleEndian.PutUint64(buf[8:16], src)
}

func decodeEdge(buf []byte) (dst, src sccgraph.Vertex) {
	return binary.LittleEndian.Uint64(buf[0:8]), binary.LittleEndian.Uint64(buf[8:16])
}

// BuildBackward derives bw_head/bw_csr for part's locally owned vertices
// from a forward CSR by exchanging reversed edges with every other rank:
// for every local edge u->v, this rank emits (v, u) to owner(v) (spec.md
// §4.2). The receiver sorts by destination (its own local vertex) via
// counting sort and builds bw_head/bw_csr.
func BuildBackward(ctx context.Context, part partition.Partition, coll collective.Collective, fwHead []uint64, fwCSR []sccgraph.Vertex) (bwHead []uint64, bwCSR []sccgraph.Vertex, err error) {
	size := coll.Size()
	localN := int(part.LocalN())

	counts := make([]int, size)
	destOf := make([]int, len(fwCSR))
	for k := 0; k < localN; k++ {
		for i := fwHead[k]; i < fwHead[k+1]; i++ {
			r := part.WorldRankOf(fwCSR[i])
			destOf[i] = r
			counts[r]++
		}
	}

	displs := make([]int, size)
	off := 0
	for r := 0; r < size; r++ {
		displs[r] = off
		off += counts[r]
	}

	data := make([]byte, len(fwCSR)*edgeElemSize)
	cursor := append([]int(nil), displs...)
	for k := 0; k < localN; k++ {
		u := part.ToGlobal(sccgraph.Vertex(k))
		for i := fwHead[k]; i < fwHead[k+1]; i++ {
			v := fwCSR[i]
			r := destOf[i]
			pos := cursor[r]
			encodeEdge(data[pos*edgeElemSize:(pos+1)*edgeElemSize], v, u)
			cursor[r]++
		}
	}

	recvData, recvCount, err := coll.AllToAllV(ctx, edgeElemSize, counts, data)
	if err != nil {
		return nil, nil, err
	}

	inDeg := make([]uint64, localN)
	type pending struct {
		k   sccgraph.Vertex
		src sccgraph.Vertex
	}
	pairs := make([]pending, recvCount)
	for i := 0; i < recvCount; i++ {
		dst, src := decodeEdge(recvData[i*edgeElemSize : (i+1)*edgeElemSize])
		k := part.ToLocal(dst)
		inDeg[k]++
		pairs[i] = pending{k: k, src: src}
	}

	bwHead = make([]uint64, localN+1)
	for k := 0; k < localN; k++ {
		bwHead[k+1] = bwHead[k] + inDeg[k]
	}

	bwCSR = make([]sccgraph.Vertex, bwHead[localN])
	fillCursor := append([]uint64(nil), bwHead[:localN]...)
	for _, p := range pairs {
		bwCSR[fillCursor[p.k]] = p.src
		fillCursor[p.k]++
	}

	return bwHead, bwCSR, nil
}
