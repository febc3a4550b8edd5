// Package fwbw implements pivot selection and the forward/backward
// reachability searches that decide the SCC containing a chosen pivot in
// one BSP-coordinated round (spec.md §4.5 "FwBw").
//
// SelectPivot picks the (degree_product, vertex_id)-maximal undecided
// vertex across all ranks via collective.AllReduceMaxPivot. ForwardSearch
// and BackwardSearch each run to frontier convergence, then CanonicalizeLabel
// rewrites every vertex committed to the pivot's SCC to the true minimum
// global id in that component via a single AllReduceMin.
//
// The source's fused single-walk variant (sharing one pair of bitsets across
// both phases) is a described optimisation, not a distinct observable
// behaviour: composing ForwardSearch then BackwardSearch produces the same
// scc_id and decision set, at the cost of one extra bitset allocation per
// round. Run uses the two-phase composition for that reason.
package fwbw
