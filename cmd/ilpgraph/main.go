// Command ilpgraph reads a .ilp file, solves it with the proximity-graph
// engine, and reports the optimal assignment to stdout, or the error to
// stderr with a non-zero exit code.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ilpgraph/ilpgraph/metrics"
	"github.com/ilpgraph/ilpgraph/parser"
	"github.com/ilpgraph/ilpgraph/solver"
)

func main() {
	maxRadius := flag.Int64("max-radius", 0, "override the computed proximity radius (0 = use the published bound)")
	timeout := flag.Duration("timeout", 0, "solve timeout (0 = no timeout)")
	jsonOut := flag.Bool("json", false, "print the result as JSON instead of a human-readable report")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address while solving (e.g. :9090)")
	parallel := flag.Bool("parallel", false, "expand graph layers concurrently")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ilpgraph [flags] <file.ilp>")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("ilpgraph: %v", err)
	}
	defer f.Close()

	parsed, err := parser.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ilpgraph: %v\n", fmt.Errorf("%w: %v", solver.ErrParse, err))
		os.Exit(1)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	var recorder metrics.Recorder = metrics.Noop{}
	if *metricsAddr != "" {
		recorder = metrics.NewPrometheus(prometheus.DefaultRegisterer)
		srv := &http.Server{Addr: *metricsAddr, Handler: promhttp.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("ilpgraph: metrics server stopped: %v", err)
			}
		}()
		defer srv.Close()
	}

	result, err := solver.Solve(ctx, parsed, solver.Options{
		MaxRadius: *maxRadius,
		Parallel:  *parallel,
		Recorder:  recorder,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ilpgraph: %v\n", err)
		os.Exit(exitCodeFor(err))
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("ilpgraph: encode result: %v", err)
		}

		return
	}

	printReport(result)
}

func printReport(r solver.Result) {
	for _, v := range r.Variables {
		fmt.Printf("%s = %d\n", v.Name, v.Value)
	}
	fmt.Printf("objective = %d\n", r.Objective)
	fmt.Printf("vertices=%d edges=%d depth=%d max_layer_size=%d sweeps=%d\n",
		r.Stats.Vertices, r.Stats.Edges, r.Stats.Depth, r.Stats.MaxLayerSize, r.Stats.Sweeps)
	fmt.Printf("build=%s solve=%s total=%s\n",
		time.Duration(r.Stats.BuildNS), time.Duration(r.Stats.SolveNS), time.Duration(r.Stats.TotalNS))
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, solver.ErrCancelled):
		return 3
	case errors.Is(err, solver.ErrRadiusExceeded):
		return 4
	case errors.Is(err, solver.ErrInfeasible):
		return 5
	case errors.Is(err, solver.ErrUnbounded):
		return 6
	case errors.Is(err, solver.ErrOverflow):
		return 7
	default:
		return 1
	}
}
