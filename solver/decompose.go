package solver

import (
	"context"

	"github.com/katalvlaran/chromatic/clique"
	"github.com/katalvlaran/chromatic/dsatur"
	"github.com/katalvlaran/chromatic/quotient"
)

// Decompose unrolls the Zykov tree rooted at g down to the configured
// DecompDepth and returns the frontier as a list of self-contained
// subproblem graphs, in deterministic left-to-right (merge before
// add-edge) order. Interior nodes are pruned only when their own bounds
// meet; the shared incumbent is not consulted, so every rank unrolling
// the same graph produces the identical list. Witness colorings found
// along the way are still offered to the incumbent, which keeps a
// solution available even when the whole tree collapses during the
// unroll. A node abandoned by the time gate contributes nothing and
// does not clear the search-completed flag.
func (s *Search) Decompose(ctx context.Context, g quotient.Graph) []quotient.Graph {
	var out []quotient.Graph
	s.decompose(ctx, g, 0, &out)

	return out
}

func (s *Search) decompose(ctx context.Context, g quotient.Graph, depth int, out *[]quotient.Graph) {
	if s.expired(ctx) {
		return
	}

	if depth >= s.opts.DecompDepth {
		*out = append(*out, g)
		return
	}

	lb, _ := clique.MaxClique(g)
	ub, colors := dsatur.Color(g)
	s.inc.Offer(ub, g, colors)
	if lb == ub {
		return
	}

	v1, v2 := SelectBranchingPair(g)
	if v1 == -1 {
		return
	}

	s.decompose(ctx, g.Merge(v1, v2), depth+1, out)
	s.decompose(ctx, g.AddEdge(v1, v2), depth+1, out)
}
