package collective

import "context"

// localCollective is one rank's handle onto a shared in-process hub.
type localCollective struct {
	h    *hub
	rank int
	size int
}

// NewLocalCluster returns `size` Collective handles, one per rank, that
// coordinate among themselves in-process. Every handle must be driven by
// its own goroutine and every rank must call each collective operation the
// same number of times in the same order (see hub).
func NewLocalCluster(size int) []Collective {
	h := newHub(size)
	out := make([]Collective, size)
	for r := 0; r < size; r++ {
		out[r] = &localCollective{h: h, rank: r, size: size}
	}

	return out
}

func (c *localCollective) Rank() int { return c.rank }
func (c *localCollective) Size() int { return c.size }

func (c *localCollective) Barrier(ctx context.Context) error {
	_, err := c.h.round(ctx, c.rank, struct{}{}, func(slots []any) []any {
		return replicate(struct{}{}, len(slots))
	})

	return err
}

func (c *localCollective) AllReduceSum(ctx context.Context, v uint64) (uint64, error) {
	res, err := c.h.round(ctx, c.rank, v, func(slots []any) []any {
		var sum uint64
		for _, s := range slots {
			sum += s.(uint64)
		}

		return replicate(sum, len(slots))
	})
	if err != nil {
		return 0, err
	}

	return res.(uint64), nil
}

func (c *localCollective) AllReduceMin(ctx context.Context, v uint64) (uint64, error) {
	res, err := c.h.round(ctx, c.rank, v, func(slots []any) []any {
		min := slots[0].(uint64)
		for _, s := range slots[1:] {
			if u := s.(uint64); u < min {
				min = u
			}
		}

		return replicate(min, len(slots))
	})
	if err != nil {
		return 0, err
	}

	return res.(uint64), nil
}

func (c *localCollective) AllReduceMaxPivot(ctx context.Context, v PivotCandidate) (PivotCandidate, error) {
	res, err := c.h.round(ctx, c.rank, v, func(slots []any) []any {
		winner := slots[0].(PivotCandidate)
		for _, s := range slots[1:] {
			winner = CombineMaxPivot(winner, s.(PivotCandidate))
		}

		return replicate(winner, len(slots))
	})
	if err != nil {
		return PivotCandidate{}, err
	}

	return res.(PivotCandidate), nil
}

func (c *localCollective) AllGather(ctx context.Context, v uint64) ([]uint64, error) {
	res, err := c.h.round(ctx, c.rank, v, func(slots []any) []any {
		out := make([]uint64, len(slots))
		for i, s := range slots {
			out[i] = s.(uint64)
		}

		return replicate(out, len(slots))
	})
	if err != nil {
		return nil, err
	}

	return res.([]uint64), nil
}

func (c *localCollective) AllGatherV(ctx context.Context, data []byte) ([][]byte, error) {
	res, err := c.h.round(ctx, c.rank, data, func(slots []any) []any {
		out := make([][]byte, len(slots))
		for i, s := range slots {
			out[i] = s.([]byte)
		}

		return replicate(out, len(slots))
	})
	if err != nil {
		return nil, err
	}

	return res.([][]byte), nil
}

func (c *localCollective) AllToAll(ctx context.Context, counts []int) ([]int, error) {
	res, err := c.h.round(ctx, c.rank, counts, func(slots []any) []any {
		size := len(slots)
		out := make([]any, size)
		for r := 0; r < size; r++ {
			recv := make([]int, size)
			for s := 0; s < size; s++ {
				recv[s] = slots[s].([]int)[r]
			}
			out[r] = recv
		}

		return out
	})
	if err != nil {
		return nil, err
	}

	return res.([]int), nil
}

type alltoallvContribution struct {
	elemSize int
	counts   []int
	data     []byte
}

func (c *localCollective) AllToAllV(ctx context.Context, elemSize int, counts []int, data []byte) ([]byte, int, error) {
	contrib := alltoallvContribution{elemSize: elemSize, counts: counts, data: data}
	res, err := c.h.round(ctx, c.rank, contrib, combineAllToAllV)
	if err != nil {
		return nil, 0, err
	}
	out := res.(alltoallvResult)

	return out.data, out.count, nil
}

type alltoallvResult struct {
	data  []byte
	count int
}

// combineAllToAllV transposes P senders' contiguous-by-destination buffers
// into P receivers' concatenated inboxes. Each sender already knows its own
// per-destination displacements (prefix sum of its own counts), so no
// global coordination beyond this single round is required.
func combineAllToAllV(slots []any) []any {
	size := len(slots)
	cs := make([]alltoallvContribution, size)
	for i, s := range slots {
		cs[i] = s.(alltoallvContribution)
	}

	displs := make([][]int, size)
	for s := 0; s < size; s++ {
		d := make([]int, size)
		off := 0
		for r := 0; r < size; r++ {
			d[r] = off
			off += cs[s].counts[r]
		}
		displs[s] = d
	}

	out := make([]any, size)
	for r := 0; r < size; r++ {
		var buf []byte
		total := 0
		for s := 0; s < size; s++ {
			n := cs[s].counts[r]
			if n == 0 {
				continue
			}
			es := cs[s].elemSize
			start := displs[s][r] * es
			end := start + n*es
			buf = append(buf, cs[s].data[start:end]...)
			total += n
		}
		out[r] = alltoallvResult{data: buf, count: total}
	}

	return out
}
