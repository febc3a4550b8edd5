// Package partition assigns the global vertex set [0, N) to P ranks and
// gives each rank an ordered local enumeration of the vertices it owns.
//
// Five variants are provided, all satisfying the Partition interface:
//
//	Slice       — contiguous equal-size blocks (last rank may be short)
//	Balanced    — contiguous blocks sized ceil(n/P) or floor(n/P)
//	Cyclic      — owner(u) = u mod P, local index u div P
//	BlockCyclic — fixed-size blocks distributed round-robin
//	Continuous  — explicit per-rank [begin, end), rank boundaries known globally
//
// Bounded is an optional capability (Begin/End) exposed by the three
// contiguous variants so loaders can slice CSR files cheaply without
// touching every other rank's data. Ordered is a marker capability meaning
// ToGlobal is monotone in the local index; Slice, Balanced, and Continuous
// satisfy it, Cyclic and BlockCyclic do not.
//
// Per spec.md §9, FwBw and Pipeline take a Partition as a generic type
// parameter rather than an interface value, so the concrete type is known
// statically in the hot reachability loops — no dynamic dispatch on the
// per-vertex inner loop.
package partition
