package solver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/chromatic/clique"
	"github.com/katalvlaran/chromatic/dsatur"
	"github.com/katalvlaran/chromatic/quotient"
)

// Search is one branch-and-bound run over a family of quotient graphs
// that share an original vertex set. It owns the incumbent, the branch
// log, and the task pool; a single Search value may process several
// subproblem graphs in sequence via RunAll.
type Search struct {
	opts      Options
	start     time.Time
	blog      *BranchLog
	inc       *Incumbent
	completed atomic.Bool
	sem       *semaphore.Weighted
}

// NewSearch builds a Search over an original instance of origN vertices.
// The start instant anchors the wall-clock budget and the trace
// timestamps; blog may be nil to discard the per-node trace. Option
// violations surface here as ErrOptionViolation.
func NewSearch(origN int, start time.Time, blog *BranchLog, opts ...Option) (*Search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if blog == nil {
		blog = NewBranchLog(nil)
	}
	s := &Search{
		opts:  o,
		start: start,
		blog:  blog,
		inc:   NewIncumbent(origN),
		// The caller's goroutine counts as one pool thread, so the
		// semaphore only guards the extra Threads-1 slots.
		sem: semaphore.NewWeighted(int64(o.Threads - 1)),
	}
	s.completed.Store(true)

	return s, nil
}

// Run explores the full Zykov tree rooted at g. It never fails: on
// timeout or context cancellation the search-completed flag is cleared
// and the best solution found so far stands.
func (s *Search) Run(ctx context.Context, g quotient.Graph) {
	s.node(ctx, g, 0)
}

// RunAll explores each subproblem graph in turn, all rooted at depth.
// Subproblems produced by Decompose are handed back here so that the
// depth-dependent task-spawn rule behaves as if the tree had never been
// cut.
func (s *Search) RunAll(ctx context.Context, graphs []quotient.Graph, depth int) {
	for _, g := range graphs {
		s.node(ctx, g, depth)
	}
}

// Best returns a copy of the best solution found so far.
func (s *Search) Best() Solution { return s.inc.Snapshot() }

// Incumbent exposes the shared bound store, letting a caller seed it
// with a solution obtained elsewhere before the search starts.
func (s *Search) Incumbent() *Incumbent { return s.inc }

// Completed reports whether every explored node ran to exhaustion; it
// is false once any node was abandoned by the time gate.
func (s *Search) Completed() bool { return s.completed.Load() }

// Elapsed returns the wall time since the search start instant.
func (s *Search) Elapsed() time.Duration { return time.Since(s.start) }

// expired reports whether the node entry gate should abandon the node.
func (s *Search) expired(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}

	return s.opts.TimeLimit > 0 && time.Since(s.start) > s.opts.TimeLimit
}

// node processes one Zykov node: gate, bounds, trace, incumbent offer,
// prunes, branch.
func (s *Search) node(ctx context.Context, g quotient.Graph, depth int) {
	if s.expired(ctx) {
		s.completed.Store(false)
		return
	}

	lb, cliqueSet := clique.MaxClique(g)
	ub, colors := dsatur.Color(g)

	s.blog.Node(s.Elapsed().Seconds(), depth, lb, cliqueSet, ub, colors)
	s.inc.Offer(ub, g, colors)

	if lb == ub {
		return
	}
	if lb >= s.inc.Bound() {
		return
	}

	v1, v2 := SelectBranchingPair(g)
	if v1 == -1 {
		return
	}

	merged := g.Merge(v1, v2)
	added := g.AddEdge(v1, v2)

	if g.N >= s.opts.MinVerticesForTask && depth < s.opts.MaxTaskDepth {
		s.branchTasks(ctx, merged, added, depth+1)
		return
	}

	s.node(ctx, merged, depth+1)
	s.node(ctx, added, depth+1)
}

// branchTasks runs the two children as pool tasks when slots are free,
// falling back to inline execution otherwise. Acquisition is
// non-blocking, so a saturated pool degrades to sequential recursion
// and the join below can never deadlock.
func (s *Search) branchTasks(ctx context.Context, merged, added quotient.Graph, depth int) {
	var wg sync.WaitGroup
	for _, child := range []quotient.Graph{merged, added} {
		if s.sem.TryAcquire(1) {
			wg.Add(1)
			go func(c quotient.Graph) {
				defer wg.Done()
				defer s.sem.Release(1)
				s.node(ctx, c, depth)
			}(child)
			continue
		}
		s.node(ctx, child, depth)
	}
	wg.Wait()
}
