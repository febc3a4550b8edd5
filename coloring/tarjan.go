package coloring

import (
	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/sccgraph"
)

// tarjanOnLabelClass finds the strongly connected components among members
// (local vertex indices), considering only forward edges whose target is
// also a member. Iterative, explicit-stack Tarjan — grounded on the Go
// compiler's SSA package scc.go, which uses the same index/lowlink/onStack
// bookkeeping without recursion to avoid stack depth proportional to the
// input.
func tarjanOnLabelClass[P partition.Partition](g *bidigraph.BidiGraphPart, part P, members []int) [][]int {
	memberSet := make(map[int]bool, len(members))
	for _, k := range members {
		memberSet[k] = true
	}

	adjacency := func(k int) []int {
		var out []int
		g.EachV(k, func(v sccgraph.Vertex) bool {
			lv := int(part.ToLocal(v))
			if memberSet[lv] {
				out = append(out, lv)
			}

			return true
		})

		return out
	}

	index := make(map[int]int)
	low := make(map[int]int)
	onStack := make(map[int]bool)
	var tstack []int
	var sccs [][]int
	next := 0

	type frame struct {
		v   int
		adj []int
		pos int
	}
	var work []frame

	for _, start := range members {
		if _, seen := index[start]; seen {
			continue
		}

		index[start] = next
		low[start] = next
		next++
		tstack = append(tstack, start)
		onStack[start] = true
		work = append(work, frame{v: start, adj: adjacency(start)})

		for len(work) > 0 {
			top := &work[len(work)-1]
			if top.pos < len(top.adj) {
				w := top.adj[top.pos]
				top.pos++
				if _, seen := index[w]; !seen {
					index[w] = next
					low[w] = next
					next++
					tstack = append(tstack, w)
					onStack[w] = true
					work = append(work, frame{v: w, adj: adjacency(w)})
				} else if onStack[w] && index[w] < low[top.v] {
					low[top.v] = index[w]
				}

				continue
			}

			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if low[top.v] < low[parent.v] {
					low[parent.v] = low[top.v]
				}
			}

			if low[top.v] == index[top.v] {
				var comp []int
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == top.v {
						break
					}
				}
				sccs = append(sccs, comp)
			}
		}
	}

	return sccs
}
