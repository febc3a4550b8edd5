// Package trim implements the removal of trivial SCCs: singleton vertices
// whose residual out-degree or in-degree is zero (spec.md §4.4 "Trim").
//
// Trim1First is the single-pass, communication-free scan. Trim1ExhaustiveFirst
// additionally cascades: decided vertices decrement the residual degree of
// their neighbours, which may expose further singletons, possibly on other
// ranks, propagated via a Frontier until a round decides nothing anywhere.
package trim
