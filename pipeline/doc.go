// Package pipeline sequences Trim, FwBw, and Coloring into the complete
// distributed SCC algorithm (spec.md §4.7 "Pipeline (orchestrator)").
//
// Run performs exhaustive trim once, then repeats (FwBw, Coloring) until a
// global reduction confirms every vertex across every rank is decided, or a
// defensive upper bound of N+1 rounds is hit — each coloring round is
// guaranteed to decide at least one label-class SCC when one exists, so the
// undecided set strictly shrinks and the bound is never actually reached on
// a well-formed graph.
package pipeline
