// Package solver - options, sentinel errors, and the Solution type.
package solver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/chromatic/quotient"
)

// Sentinel errors for solver configuration and result validation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrImproperColoring indicates a coloring with a monochromatic edge.
	ErrImproperColoring = errors.New("solver: coloring is not proper")

	// ErrColorOutOfRange indicates a color outside [0, NumColors).
	ErrColorOutOfRange = errors.New("solver: color out of range")
)

// UnsolvedColors is the sentinel bound of an incumbent that holds no
// feasible coloring yet; it exceeds any reachable color count.
const UnsolvedColors = math.MaxInt32

// Default tuning parameters of the search.
const (
	// DefaultMinVerticesForTask is the smallest current-graph size for
	// which branch children are spawned as pool tasks.
	DefaultMinVerticesForTask = 30

	// DefaultMaxTaskDepth bounds the node depth below which children may
	// still be spawned as tasks.
	DefaultMaxTaskDepth = 4

	// DefaultDecompDepth is the unroll depth of the work decomposer.
	DefaultDecompDepth = 2
)

// Option configures a Search via functional arguments. An invalid value
// is recorded internally and surfaced as ErrOptionViolation by NewSearch.
type Option func(*Options)

// Options holds the tuning parameters of one Search.
type Options struct {
	// TimeLimit is the wall-clock budget measured from the Search start
	// instant. Zero disables the gate.
	TimeLimit time.Duration

	// MinVerticesForTask: below this current-graph size children always
	// run sequentially.
	MinVerticesForTask int

	// MaxTaskDepth: at this depth and beyond children always run
	// sequentially.
	MaxTaskDepth int

	// DecompDepth is the unroll depth used by Decompose.
	DecompDepth int

	// Threads caps the number of concurrently running pool tasks,
	// including the calling goroutine. One means fully sequential.
	Threads int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference tuning: no time limit, task
// threshold 30, task depth 4, decomposition depth 2, one thread.
func DefaultOptions() Options {
	return Options{
		TimeLimit:          0,
		MinVerticesForTask: DefaultMinVerticesForTask,
		MaxTaskDepth:       DefaultMaxTaskDepth,
		DecompDepth:        DefaultDecompDepth,
		Threads:            1,
	}
}

// WithTimeLimit sets the wall-clock budget. Zero means no limit;
// a negative duration is an option violation.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMinVerticesForTask sets the task-spawn size threshold (≥ 0).
func WithMinVerticesForTask(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinVerticesForTask cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinVerticesForTask = n
	}
}

// WithMaxTaskDepth sets the depth at and beyond which children no longer
// spawn as tasks (≥ 0).
func WithMaxTaskDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxTaskDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxTaskDepth = d
	}
}

// WithDecompDepth sets the decomposer unroll depth (≥ 0).
func WithDecompDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DecompDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DecompDepth = d
	}
}

// WithThreads sets the task-pool width (≥ 1).
func WithThreads(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Threads must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Threads = n
	}
}

// Solution is a coloring of the original vertex set.
type Solution struct {
	// NumColors counts the distinct colors used, or UnsolvedColors when
	// no feasible coloring has been recorded.
	NumColors int

	// Coloring holds, for each original vertex, its color in
	// [0, NumColors), or -1 when the vertex is unassigned.
	Coloring []int
}

// Solved reports whether the solution carries a feasible coloring.
func (s Solution) Solved() bool { return s.NumColors != UnsolvedColors }

// Verify checks that s is a proper coloring of the original graph orig
// with every assigned color inside [0, NumColors). Vertices colored -1
// are reported as out of range: a complete solution has none.
func (s Solution) Verify(orig quotient.Graph) error {
	var v int
	for v = 0; v < orig.N; v++ {
		c := s.Coloring[v]
		if c < 0 || c >= s.NumColors {
			return fmt.Errorf("%w: vertex %d has color %d of %d", ErrColorOutOfRange, v, c, s.NumColors)
		}
		for w := range orig.Adj[v] {
			if s.Coloring[w] == c {
				return fmt.Errorf("%w: edge (%d,%d) colored %d on both ends", ErrImproperColoring, v, w, c)
			}
		}
	}

	return nil
}
