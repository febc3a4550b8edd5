package partition

import "github.com/kaspan-go/kaspan/sccgraph"

// BlockCyclic distributes fixed-size blocks of `blockSize` global ids
// round-robin across ranks: global block index b = u / blockSize is owned
// by rank b mod P. Not Ordered (like Cyclic, but at block granularity).
type BlockCyclic struct {
	n, blockSize sccgraph.Vertex
	rank, size   int
}

// NewBlockCyclic builds a BlockCyclic partition for the given rank.
func NewBlockCyclic(n, blockSize sccgraph.Vertex, rank, size int) (*BlockCyclic, error) {
	if err := checkWorldSize(size); err != nil {
		return nil, err
	}
	if err := checkWorldRank(rank, size); err != nil {
		return nil, err
	}
	if blockSize == 0 {
		return nil, ErrInvalidBlockSize
	}

	return &BlockCyclic{n: n, blockSize: blockSize, rank: rank, size: size}, nil
}

func (b *BlockCyclic) N() sccgraph.Vertex { return b.n }

func (b *BlockCyclic) LocalN() sccgraph.Vertex {
	var count sccgraph.Vertex
	for blk := sccgraph.Vertex(0); blk*b.blockSize < b.n; blk++ {
		if int(blk%sccgraph.Vertex(b.size)) != b.rank {
			continue
		}
		start := blk * b.blockSize
		end := start + b.blockSize
		if end > b.n {
			end = b.n
		}
		count += end - start
	}

	return count
}

func (b *BlockCyclic) WorldRank() int { return b.rank }
func (b *BlockCyclic) WorldSize() int { return b.size }

func (b *BlockCyclic) blockOf(u sccgraph.Vertex) sccgraph.Vertex { return u / b.blockSize }

func (b *BlockCyclic) HasLocal(u sccgraph.Vertex) bool {
	return b.WorldRankOf(u) == b.rank
}

func (b *BlockCyclic) ToLocal(u sccgraph.Vertex) sccgraph.Vertex {
	if !b.HasLocal(u) {
		panicNotLocal(u, b.rank)
	}
	// Count vertices owned by this rank strictly before u.
	var k sccgraph.Vertex
	blk := b.blockOf(u)
	for owned := sccgraph.Vertex(b.rank); owned < blk; owned += sccgraph.Vertex(b.size) {
		start := owned * b.blockSize
		end := start + b.blockSize
		if end > b.n {
			end = b.n
		}
		k += end - start
	}
	blockStart := blk * b.blockSize

	return k + (u - blockStart)
}

func (b *BlockCyclic) ToGlobal(k sccgraph.Vertex) sccgraph.Vertex {
	localN := b.LocalN()
	if k >= localN {
		panicLocalOOB(k, localN, b.rank)
	}

	remaining := k
	for blk := sccgraph.Vertex(b.rank); ; blk += sccgraph.Vertex(b.size) {
		start := blk * b.blockSize
		if start >= b.n {
			panicLocalOOB(k, localN, b.rank)
		}
		end := start + b.blockSize
		if end > b.n {
			end = b.n
		}
		width := end - start
		if remaining < width {
			return start + remaining
		}
		remaining -= width
	}
}

func (b *BlockCyclic) WorldRankOf(u sccgraph.Vertex) int {
	return int(b.blockOf(u) % sccgraph.Vertex(b.size))
}
