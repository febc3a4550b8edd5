package frontier

import (
	"context"

	"github.com/kaspan-go/kaspan/collective"
)

// Frontier is a bulk-synchronous, multi-destination work queue over item
// type T (spec.md §3 "Entities", §4.3). Zero value is not usable; construct
// with New.
type Frontier[T any] struct {
	codec Codec[T]
	owner func(item T) int
	size  int

	sendBuf    []T
	sendCounts []int

	recvBuf []T
}

// New constructs an empty Frontier. owner must return, for any item this
// rank will ever Push, the same rank it was pushed to — it is consulted
// again by Comm's in-place reorder step.
func New[T any](codec Codec[T], owner func(item T) int, worldSize int) *Frontier[T] {
	return &Frontier[T]{
		codec:      codec,
		owner:      owner,
		size:       worldSize,
		sendCounts: make([]int, worldSize),
	}
}

// Push appends item to the send buffer for delivery to rank in the next
// Comm round (spec.md §4.3 "push(rank, item)").
func (f *Frontier[T]) Push(rank int, item T) {
	f.sendBuf = append(f.sendBuf, item)
	f.sendCounts[rank]++
}

// LocalPush appends item directly to the recv buffer, bypassing exchange
// (spec.md §4.3 "local_push(item)").
func (f *Frontier[T]) LocalPush(item T) {
	f.recvBuf = append(f.recvBuf, item)
}

// HasNext reports whether the recv buffer has unconsumed items.
func (f *Frontier[T]) HasNext() bool { return len(f.recvBuf) > 0 }

// Next pops one item off the back of the recv buffer. Panics if HasNext is
// false. SCC reachability has no ordering requirement, so stack discipline
// is sufficient (spec.md §4.3 "Consumer").
func (f *Frontier[T]) Next() T {
	n := len(f.recvBuf)
	item := f.recvBuf[n-1]
	f.recvBuf = f.recvBuf[:n-1]

	return item
}

// PendingSend reports the current send buffer size, for callers that want
// to inspect round-local state (e.g. tests, telemetry) without consuming it.
func (f *Frontier[T]) PendingSend() int { return len(f.sendBuf) }

// Comm performs one BSP exchange round (spec.md §4.3 "The BSP exchange"):
// an all-reduce convergence check, an in-place reorder of the send buffer by
// destination rank, and an Alltoallv_c exchange whose arrivals are appended
// to the recv buffer. It returns false, with both buffers cleared of send
// state, when the exchange was globally empty — the convergence signal.
func (f *Frontier[T]) Comm(ctx context.Context, coll collective.Collective) (bool, error) {
	total, err := coll.AllReduceSum(ctx, uint64(len(f.sendBuf)))
	if err != nil {
		return false, err
	}
	if total == 0 {
		f.sendBuf = f.sendBuf[:0]
		for r := range f.sendCounts {
			f.sendCounts[r] = 0
		}

		return false, nil
	}

	Reorder(f.sendBuf, f.owner, f.sendCounts)

	// A real MPI transport needs recv_counts ahead of Alltoallv_c to size
	// its own buffers; our Collective derives them internally inside
	// AllToAllV, so the explicit exchange is kept only for protocol fidelity
	// (spec.md §4.3 step 3) and its result is not used.
	if _, err := coll.AllToAll(ctx, f.sendCounts); err != nil {
		return false, err
	}

	elemSize := f.codec.Size()
	data := make([]byte, len(f.sendBuf)*elemSize)
	for i, item := range f.sendBuf {
		f.codec.Encode(data[i*elemSize:(i+1)*elemSize], item)
	}

	recvData, recvCount, err := coll.AllToAllV(ctx, elemSize, f.sendCounts, data)
	if err != nil {
		return false, err
	}

	for i := 0; i < recvCount; i++ {
		f.recvBuf = append(f.recvBuf, f.codec.Decode(recvData[i*elemSize:(i+1)*elemSize]))
	}

	f.sendBuf = f.sendBuf[:0]
	for r := range f.sendCounts {
		f.sendCounts[r] = 0
	}

	return true, nil
}
