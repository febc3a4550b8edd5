package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kaspan-go/kaspan/bidigraph"
	"github.com/kaspan-go/kaspan/collective"
	"github.com/kaspan-go/kaspan/genio"
	"github.com/kaspan-go/kaspan/partition"
	"github.com/kaspan-go/kaspan/pipeline"
	"github.com/kaspan-go/kaspan/sccgraph"
	"github.com/kaspan-go/kaspan/telemetry"
)

var (
	runVertices  int
	runAvgDegree float64
	runSeed      uint64
	runRanks     int
	runPartition string
	runBlockSize uint64
	runMetrics   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a synthetic graph and run the SCC engine over it",
	Long: `run generates an SCC-shaped graph with genio.SCCShaped, partitions it
across an in-process cluster of ranks, runs trim/fwbw/coloring to
completion, and prints a summary of the resulting scc_id assignment.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runVertices, "vertices", 0, "number of vertices to generate (default from config: 1000)")
	runCmd.Flags().Float64Var(&runAvgDegree, "avg-degree", 0, "average out-degree (default from config: 2.0)")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "generator seed (default from config: 1)")
	runCmd.Flags().IntVar(&runRanks, "ranks", 0, "number of simulated ranks (default from config: 1)")
	runCmd.Flags().StringVar(&runPartition, "partition", "", "partition scheme: slice, balanced, cyclic, blockcyclic (default from config: balanced)")
	runCmd.Flags().Uint64Var(&runBlockSize, "block-size", 0, "block size for the blockcyclic partition (default from config: 16)")
	runCmd.Flags().BoolVar(&runMetrics, "metrics", false, "record and print Prometheus metrics for the run")
}

func runRun(cmd *cobra.Command, args []string) error {
	vertices := firstNonZeroInt(runVertices, runDefaults.Vertices)
	avgDegree := firstNonZeroFloat(runAvgDegree, runDefaults.AvgDegree)
	seed := firstNonZeroUint(runSeed, runDefaults.Seed)
	ranks := firstNonZeroInt(runRanks, runDefaults.Ranks)
	scheme := runPartition
	if scheme == "" {
		scheme = runDefaults.Partition
	}
	blockSize := firstNonZeroUint(runBlockSize, runDefaults.BlockSize)
	useMetrics := runMetrics || runDefaults.Metrics

	g, err := genio.SCCShaped{}.Generate(cmd.Context(), vertices, avgDegree, seed)
	if err != nil {
		return fmt.Errorf("kaspanctl: generating graph: %w", err)
	}

	var reg *prometheus.Registry
	var sink telemetry.Sink = telemetry.NoopSink{}
	if useMetrics {
		reg = prometheus.NewRegistry()
		promSink, err := telemetry.NewPrometheusSink(reg)
		if err != nil {
			return fmt.Errorf("kaspanctl: registering metrics: %w", err)
		}
		sink = promSink
	}

	sccID, elapsed, err := runEngine(cmd.Context(), g, ranks, scheme, blockSize, sink)
	if err != nil {
		return fmt.Errorf("kaspanctl: running engine: %w", err)
	}

	printSummary(cmd, g, sccID, elapsed)
	if reg != nil {
		printMetrics(cmd, reg)
	}

	return nil
}

// runEngine partitions g across ranks ranks using the named scheme and runs
// the pipeline to completion, returning the global scc_id array. Because
// the partition scheme is chosen at runtime from a flag, part is held as
// the partition.Partition interface here, so pipeline.RunWithTelemetry's
// generic dispatch resolves to the interface itself rather than one
// concrete type — unlike a library caller that knows its Partition type at
// compile time, this command cannot get static dispatch through FwBw.
func runEngine(ctx context.Context, g genio.Graph, ranks int, scheme string, blockSize uint64, sink telemetry.Sink) ([]sccgraph.Vertex, time.Duration, error) {
	colls := collective.NewLocalCluster(ranks)
	global := make([]sccgraph.Vertex, g.N)

	start := time.Now()
	eg, egCtx := errgroup.WithContext(ctx)
	for r := 0; r < ranks; r++ {
		r := r
		eg.Go(func() error {
			part, err := newPartition(scheme, sccgraph.Vertex(g.N), blockSize, r, ranks)
			if err != nil {
				return err
			}

			fwHead, fwCSR := buildForwardCSR(part, g.Edges)
			bwHead, bwCSR, err := bidigraph.BuildBackward(egCtx, part, colls[r], fwHead, fwCSR)
			if err != nil {
				return err
			}
			gp := &bidigraph.BidiGraphPart{N: sccgraph.Vertex(g.N), FwHead: fwHead, FwCSR: fwCSR, BwHead: bwHead, BwCSR: bwCSR}

			sccID, err := pipeline.RunWithTelemetry(egCtx, gp, part, colls[r], sink)
			if err != nil {
				return err
			}
			for k := sccgraph.Vertex(0); k < part.LocalN(); k++ {
				global[part.ToGlobal(k)] = sccID[k]
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	return global, time.Since(start), nil
}

func newPartition(scheme string, n sccgraph.Vertex, blockSize uint64, rank, size int) (partition.Partition, error) {
	switch scheme {
	case "slice":
		return partition.NewSlice(n, rank, size)
	case "balanced", "":
		return partition.NewBalanced(n, rank, size)
	case "cyclic":
		return partition.NewCyclic(n, rank, size)
	case "blockcyclic":
		return partition.NewBlockCyclic(n, blockSize, rank, size)
	default:
		return nil, fmt.Errorf("kaspanctl: unknown partition scheme %q", scheme)
	}
}

// buildForwardCSR builds a local forward CSR slice for any Partition
// implementation; this runs once at fixture setup, never in a hot loop, so
// dispatching through the Partition interface is fine here.
func buildForwardCSR(part partition.Partition, edges []sccgraph.Edge) ([]uint64, []sccgraph.Vertex) {
	localN := int(part.LocalN())
	adj := make([][]sccgraph.Vertex, localN)
	for _, e := range edges {
		if !part.HasLocal(e.From) {
			continue
		}
		k := int(part.ToLocal(e.From))
		adj[k] = append(adj[k], e.To)
	}

	head := make([]uint64, localN+1)
	var csr []sccgraph.Vertex
	for k := 0; k < localN; k++ {
		csr = append(csr, adj[k]...)
		head[k+1] = uint64(len(csr))
	}

	return head, csr
}

func printSummary(cmd *cobra.Command, g genio.Graph, sccID []sccgraph.Vertex, elapsed time.Duration) {
	distinct := make(map[sccgraph.Vertex]int)
	for _, label := range sccID {
		distinct[label]++
	}

	sizes := make([]int, 0, len(distinct))
	for _, sz := range distinct {
		sizes = append(sizes, sz)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "vertices: %d\n", g.N)
	fmt.Fprintf(out, "edges: %d\n", len(g.Edges))
	fmt.Fprintf(out, "components: %d\n", len(distinct))
	fmt.Fprintf(out, "elapsed: %s\n", elapsed)
	if len(sizes) > 0 {
		top := sizes
		if len(top) > 5 {
			top = top[:5]
		}
		fmt.Fprintf(out, "largest components: %v\n", top)
	}
}

func printMetrics(cmd *cobra.Command, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		fmt.Fprintf(cmd.OutOrStderr(), "kaspanctl: gathering metrics: %v\n", err)
		return
	}

	out := cmd.OutOrStdout()
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(out, "%s%v %g\n", fam.GetName(), labelPairs(m.GetLabel()), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(out, "%s%v count=%d sum=%g\n", fam.GetName(), labelPairs(m.GetLabel()), m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			}
		}
	}
}

func labelPairs(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	s := "{"
	for i, l := range labels {
		if i > 0 {
			s += ","
		}
		s += l.GetName() + "=" + l.GetValue()
	}
	return s + "}"
}

func firstNonZeroInt(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

func firstNonZeroFloat(a, b float64) float64 {
	if a != 0 {
		return a
	}
	return b
}

func firstNonZeroUint(a, b uint64) uint64 {
	if a != 0 {
		return a
	}
	return b
}
