package partition

import "github.com/kaspan-go/kaspan/sccgraph"

// Cyclic assigns owner(u) = u mod P with local index u div P. Not Ordered:
// consecutive local indices correspond to global ids P apart, not adjacent.
type Cyclic struct {
	n          sccgraph.Vertex
	rank, size int
}

// NewCyclic builds a Cyclic partition for the given rank.
func NewCyclic(n sccgraph.Vertex, rank, size int) (*Cyclic, error) {
	if err := checkWorldSize(size); err != nil {
		return nil, err
	}
	if err := checkWorldRank(rank, size); err != nil {
		return nil, err
	}

	return &Cyclic{n: n, rank: rank, size: size}, nil
}

func (c *Cyclic) N() sccgraph.Vertex { return c.n }

func (c *Cyclic) LocalN() sccgraph.Vertex {
	sz := sccgraph.Vertex(c.size)
	q, r := c.n/sz, c.n%sz
	if sccgraph.Vertex(c.rank) < r {
		return q + 1
	}

	return q
}

func (c *Cyclic) WorldRank() int { return c.rank }
func (c *Cyclic) WorldSize() int { return c.size }

func (c *Cyclic) HasLocal(u sccgraph.Vertex) bool {
	return int(u%sccgraph.Vertex(c.size)) == c.rank
}

func (c *Cyclic) ToLocal(u sccgraph.Vertex) sccgraph.Vertex {
	if !c.HasLocal(u) {
		panicNotLocal(u, c.rank)
	}

	return u / sccgraph.Vertex(c.size)
}

func (c *Cyclic) ToGlobal(k sccgraph.Vertex) sccgraph.Vertex {
	if k >= c.LocalN() {
		panicLocalOOB(k, c.LocalN(), c.rank)
	}

	return k*sccgraph.Vertex(c.size) + sccgraph.Vertex(c.rank)
}

func (c *Cyclic) WorldRankOf(u sccgraph.Vertex) int {
	return int(u % sccgraph.Vertex(c.size))
}
