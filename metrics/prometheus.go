package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus is a Recorder backed by prometheus Histograms, a Counter
// and a CounterVec, registered on construction against the Registerer
// given to NewPrometheus (grounded on the teacher's gateway-svc metrics
// package's promauto.New* pattern).
type Prometheus struct {
	buildDuration prometheus.Histogram
	solveDuration prometheus.Histogram
	totalDuration prometheus.Histogram
	sweeps        prometheus.Counter
	results       *prometheus.CounterVec
}

// NewPrometheus registers the engine's metrics against reg and returns
// a Recorder backed by them. Callers normally pass
// prometheus.DefaultRegisterer; tests pass a fresh prometheus.NewRegistry()
// so repeated construction never collides.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	fac := promauto.With(reg)

	return &Prometheus{
		buildDuration: fac.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ilpgraph",
			Name:      "build_duration_seconds",
			Help:      "Time spent enumerating the proximity graph.",
			Buckets:   prometheus.DefBuckets,
		}),
		solveDuration: fac.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ilpgraph",
			Name:      "solve_duration_seconds",
			Help:      "Time spent in the longest-path relaxation loop.",
			Buckets:   prometheus.DefBuckets,
		}),
		totalDuration: fac.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ilpgraph",
			Name:      "total_duration_seconds",
			Help:      "End-to-end Driver.Solve wall time.",
			Buckets:   prometheus.DefBuckets,
		}),
		sweeps: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "ilpgraph",
			Name:      "relaxation_sweeps_total",
			Help:      "Cumulative relaxation sweeps across all solves.",
		}),
		results: fac.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ilpgraph",
			Name:      "solve_results_total",
			Help:      "Solve outcomes by kind (ok, infeasible, unbounded, ...).",
		}, []string{"kind"}),
	}
}

func (p *Prometheus) ObserveBuild(d time.Duration) { p.buildDuration.Observe(d.Seconds()) }
func (p *Prometheus) ObserveSolve(d time.Duration) { p.solveDuration.Observe(d.Seconds()) }
func (p *Prometheus) ObserveTotal(d time.Duration) { p.totalDuration.Observe(d.Seconds()) }
func (p *Prometheus) IncSweeps(n int)              { p.sweeps.Add(float64(n)) }
func (p *Prometheus) IncResult(kind string)        { p.results.WithLabelValues(kind).Inc() }
