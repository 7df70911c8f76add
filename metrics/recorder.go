package metrics

import "time"

// Recorder receives the Driver's per-solve observations. A solver.Options
// with a nil Recorder falls back to Noop.
type Recorder interface {
	ObserveBuild(d time.Duration)
	ObserveSolve(d time.Duration)
	ObserveTotal(d time.Duration)
	IncSweeps(n int)
	IncResult(kind string)
}

// Noop discards every observation. It is the Driver's default Recorder.
type Noop struct{}

func (Noop) ObserveBuild(time.Duration) {}
func (Noop) ObserveSolve(time.Duration) {}
func (Noop) ObserveTotal(time.Duration) {}
func (Noop) IncSweeps(int)              {}
func (Noop) IncResult(string)           {}
