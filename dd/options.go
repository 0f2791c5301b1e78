package dd

import (
	"runtime"
	"time"
)

// DefaultWidth is the fixed maximum layer width used when the caller does
// not configure one.
const DefaultWidth = 100

// Options configures a Solver.
//
// Width     – maximum number of nodes kept per diagram layer; must be ≥ 1.
// TimeLimit – soft wall-clock budget for Maximize; 0 means unlimited.
// Workers   – number of parallel workers; 0 means runtime.NumCPU().
type Options struct {
	Width     int
	TimeLimit time.Duration
	Workers   int
}

// DefaultOptions returns the canonical solver configuration: fixed width
// DefaultWidth, no time limit, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		TimeLimit: 0,
		Workers:   0,
	}
}

// normalize validates opts and resolves defaulted fields.
func (o Options) normalize() (Options, error) {
	if o.Width < 1 {
		return Options{}, ErrBadWidth
	}
	if o.Workers < 0 {
		return Options{}, ErrBadWorkers
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}

	return o, nil
}
