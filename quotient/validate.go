// Package quotient - structural invariant checks (used heavily by tests).
package quotient

import "fmt"

// Validate checks the structural invariants of g:
//
//	(a) no self-loops;
//	(b) symmetric adjacency within [0, N);
//	(c) Mapping rows are non-empty and partition [0, OrigN);
//	(d) N ≤ OrigN (unless both are zero).
//
// Returns nil when all invariants hold, or the first violated sentinel
// wrapped with positional detail.
//
// Complexity: O(n + m + OrigN)
func (g Graph) Validate() error {
	if g.N > g.OrigN {
		return fmt.Errorf("%w: N=%d exceeds OrigN=%d", ErrBrokenMapping, g.N, g.OrigN)
	}

	var (
		i int
		w int
	)
	for i = 0; i < g.N; i++ {
		for w = range g.Adj[i] {
			if w == i {
				return fmt.Errorf("%w: vertex %d", ErrSelfLoop, i)
			}
			if w < 0 || w >= g.N {
				return fmt.Errorf("%w: neighbor %d of vertex %d", ErrVertexOutOfRange, w, i)
			}
			if !g.HasEdge(w, i) {
				return fmt.Errorf("%w: edge (%d,%d) missing its mirror", ErrAsymmetricAdjacency, i, w)
			}
		}
	}

	seen := make([]bool, g.OrigN)
	var total int
	for i = 0; i < g.N; i++ {
		if len(g.Mapping[i]) == 0 {
			return fmt.Errorf("%w: empty mapping row %d", ErrBrokenMapping, i)
		}
		for _, orig := range g.Mapping[i] {
			if orig < 0 || orig >= g.OrigN {
				return fmt.Errorf("%w: original vertex %d out of [0,%d)", ErrBrokenMapping, orig, g.OrigN)
			}
			if seen[orig] {
				return fmt.Errorf("%w: original vertex %d mapped twice", ErrBrokenMapping, orig)
			}
			seen[orig] = true
			total++
		}
	}
	if total != g.OrigN {
		return fmt.Errorf("%w: mapped %d of %d original vertices", ErrBrokenMapping, total, g.OrigN)
	}

	return nil
}
