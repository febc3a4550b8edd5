package partition

import "github.com/kaspan-go/kaspan/sccgraph"

// Slice partitions [0, N) into P contiguous equal-size blocks of
// ceil(n/P), with the last non-empty rank taking whatever remains (so it may
// be short, never long; trailing ranks may own nothing).
type Slice struct {
	n, begin, end sccgraph.Vertex
	rank, size    int
}

// NewSlice builds a trivial contiguous Slice partition for the given rank.
func NewSlice(n sccgraph.Vertex, rank, size int) (*Slice, error) {
	if err := checkWorldSize(size); err != nil {
		return nil, err
	}
	if err := checkWorldRank(rank, size); err != nil {
		return nil, err
	}

	block := (n + sccgraph.Vertex(size) - 1) / sccgraph.Vertex(size)
	begin := block * sccgraph.Vertex(rank)
	if begin > n {
		begin = n
	}
	end := begin + block
	if end > n {
		end = n
	}

	return &Slice{n: n, begin: begin, end: end, rank: rank, size: size}, nil
}

func (s *Slice) N() sccgraph.Vertex      { return s.n }
func (s *Slice) LocalN() sccgraph.Vertex { return s.end - s.begin }
func (s *Slice) WorldRank() int          { return s.rank }
func (s *Slice) WorldSize() int          { return s.size }
func (s *Slice) Begin() sccgraph.Vertex  { return s.begin }
func (s *Slice) End() sccgraph.Vertex    { return s.end }

func (s *Slice) HasLocal(u sccgraph.Vertex) bool {
	return u >= s.begin && u < s.end
}

func (s *Slice) ToLocal(u sccgraph.Vertex) sccgraph.Vertex {
	if !s.HasLocal(u) {
		panicNotLocal(u, s.rank)
	}

	return u - s.begin
}

func (s *Slice) ToGlobal(k sccgraph.Vertex) sccgraph.Vertex {
	if k >= s.LocalN() {
		panicLocalOOB(k, s.LocalN(), s.rank)
	}

	return s.begin + k
}

func (s *Slice) WorldRankOf(u sccgraph.Vertex) int {
	block := (s.n + sccgraph.Vertex(s.size) - 1) / sccgraph.Vertex(s.size)
	if block == 0 {
		return s.size - 1
	}
	r := int(u / block)
	if r >= s.size {
		r = s.size - 1
	}

	return r
}

func (s *Slice) ordered() {}
