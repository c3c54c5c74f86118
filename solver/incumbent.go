package solver

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/chromatic/quotient"
)

// Incumbent is the shared best-solution store of one search. Offers are
// serialized under a mutex; Bound reads are atomic and lock-free, so a
// pruning node may observe a value one update stale. A stale bound is
// always larger than the true one and only ever weakens a prune.
type Incumbent struct {
	mu    sync.Mutex
	bound atomic.Int64
	best  Solution
}

// NewIncumbent returns an empty incumbent with bound UnsolvedColors.
func NewIncumbent(origN int) *Incumbent {
	inc := &Incumbent{}
	inc.bound.Store(UnsolvedColors)
	inc.best = Solution{
		NumColors: UnsolvedColors,
		Coloring:  make([]int, origN),
	}
	for i := range inc.best.Coloring {
		inc.best.Coloring[i] = -1
	}

	return inc
}

// Bound returns the current best color count, or UnsolvedColors when no
// feasible coloring has been offered yet.
func (inc *Incumbent) Bound() int {
	return int(inc.bound.Load())
}

// Offer lifts colors, a proper coloring of g using numColors colors,
// through g.Mapping to the original vertex set and installs it as the
// new best solution when it strictly improves the current bound. The
// report value is true only when the offer was accepted.
func (inc *Incumbent) Offer(numColors int, g quotient.Graph, colors []int) bool {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	if numColors >= inc.best.NumColors {
		return false
	}

	var slot int
	for slot = 0; slot < g.N; slot++ {
		for _, orig := range g.Mapping[slot] {
			inc.best.Coloring[orig] = colors[slot]
		}
	}
	inc.best.NumColors = numColors
	inc.bound.Store(int64(numColors))

	return true
}

// Snapshot returns a copy of the best solution found so far.
func (inc *Incumbent) Snapshot() Solution {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	out := Solution{
		NumColors: inc.best.NumColors,
		Coloring:  make([]int, len(inc.best.Coloring)),
	}
	copy(out.Coloring, inc.best.Coloring)

	return out
}
