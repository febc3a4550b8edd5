package collective

import (
	"context"
	"sync"
)

// hub is a reusable rendezvous point for exactly `size` participants. Each
// round, every participant calls round() once with its contribution; the
// last arrival computes combine(slots) — one result per rank — and wakes
// every other waiter. Because every rank in this engine executes the same
// sequence of collective calls in the same order (BSP program order,
// spec.md §5), a single hub can be reused sequentially for every operation
// kind without tagging rounds by operation.
type hub struct {
	mu      sync.Mutex
	size    int
	arrived int
	slots   []any
	result  []any
	done    chan struct{}
}

func newHub(size int) *hub {
	return &hub{
		size:  size,
		slots: make([]any, size),
		done:  make(chan struct{}),
	}
}

// round blocks until all `size` participants have called it for the
// current generation, then returns this rank's entry of combine(slots).
func (h *hub) round(ctx context.Context, rank int, contribution any, combine func(slots []any) []any) (any, error) {
	h.mu.Lock()
	h.slots[rank] = contribution
	h.arrived++

	if h.arrived == h.size {
		result := combine(h.slots)
		doneCh := h.done

		h.result = result
		h.slots = make([]any, h.size)
		h.arrived = 0
		h.done = make(chan struct{})

		h.mu.Unlock()
		close(doneCh)

		return result[rank], nil
	}

	doneCh := h.done
	h.mu.Unlock()

	select {
	case <-doneCh:
		h.mu.Lock()
		result := h.result
		h.mu.Unlock()

		return result[rank], nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func replicate(v any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}

	return out
}
