package solver

import (
	"context"
	"time"

	"github.com/ilpgraph/ilpgraph/metrics"
)

// Options configures a Solve call. The zero value is usable: MaxRadius
// and MagnitudeCap of zero mean "use the engine's own defaults",
// Recorder of nil means metrics.Noop.
type Options struct {
	// MaxRadius overrides the proximity radius actually enforced by
	// the graph builder; zero means "use the computed proximity.Bound
	// unmodified" (spec.md §9 "radius as a knob" — implementations may
	// use any bound >= the published one).
	MaxRadius int64

	// MagnitudeCap bounds longest-path distances before ErrOverflow
	// fires; zero means longestpath's own default.
	MagnitudeCap int64

	// Parallel enables concurrent per-layer edge enumeration
	// (spec.md §5).
	Parallel bool

	// Topological runs the longest-path single-sweep fast path
	// instead of the general iterated loop (spec.md §9).
	Topological bool

	// Cancel is an alternate raw cancellation channel for callers
	// without a context.Context handy; merged into the internal
	// context via a small adapter goroutine. Prefer passing a ctx to
	// Solve directly when one is available.
	Cancel <-chan struct{}

	// Recorder receives per-solve timing and outcome observations.
	Recorder metrics.Recorder
}

// Stats mirrors spec.md §6 "Core → Driver output" stats block.
type Stats struct {
	Vertices     int
	Edges        int
	Depth        int
	MaxLayerSize int
	BuildNS      int64
	SolveNS      int64
	TotalNS      int64
	Sweeps       int
}

// Variable is one reported (name, value) pair in the caller's original
// variable order.
type Variable struct {
	Name  string
	Value int64
}

// Result is the Driver's successful output.
type Result struct {
	Variables []Variable
	Objective int64
	Stats     Stats
}

// withCancel merges opts.Cancel into ctx, if set, returning a derived
// context and its cancel function (always safe to call, even if
// opts.Cancel is nil).
func withCancel(ctx context.Context, cancel <-chan struct{}) (context.Context, context.CancelFunc) {
	derived, stop := context.WithCancel(ctx)
	if cancel == nil {
		return derived, stop
	}

	go func() {
		select {
		case <-cancel:
			stop()
		case <-derived.Done():
		}
	}()

	return derived, stop
}

func since(t time.Time) int64 { return time.Since(t).Nanoseconds() }
