// Command kaspanctl drives the distributed SCC engine from the command
// line: generate a synthetic graph, partition and run it across an
// in-process cluster, and report the resulting scc_id summary.
package main

import "github.com/kaspan-go/kaspan/cmd/kaspanctl/cmd"

func main() {
	cmd.Execute()
}
