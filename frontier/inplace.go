package frontier

// Reorder partitions items in place so that every rank's items are
// contiguous and in rank order, using counts[r] (the already-known number of
// items destined for rank r) to derive bucket boundaries. It allocates only
// the O(size) cursor array, never an O(n) per-destination list (spec.md §4.3
// step 4, §9 "In-place partition-by-rank").
//
// The algorithm is a standard in-place bucket sort ("American flag sort"):
// for each rank r in turn, walk its bucket from the next free slot; an item
// already destined for r is skipped, anything else is swapped into the next
// free slot of its true destination. Every swap places one item in its
// final position, so total work is O(n + size).
//
// counts must be exact: Σcounts[r] == len(items) and owner(items[i]) occurs
// counts[owner(items[i])] times overall, or the inner loop never terminates.
func Reorder[T any](items []T, owner func(item T) int, counts []int) {
	size := len(counts)
	displs := make([]int, size+1)
	for r := 0; r < size; r++ {
		displs[r+1] = displs[r] + counts[r]
	}

	cursor := append([]int(nil), displs[:size]...)
	for r := 0; r < size; r++ {
		for cursor[r] < displs[r+1] {
			want := owner(items[cursor[r]])
			if want == r {
				cursor[r]++
				continue
			}
			items[cursor[r]], items[cursor[want]] = items[cursor[want]], items[cursor[r]]
			cursor[want]++
		}
	}
}
