// Package clique - Bron–Kerbosch maximal-clique enumeration with pivoting.
package clique

import "github.com/katalvlaran/chromatic/quotient"

// state carries the shared bookkeeping of one enumeration run.
type state struct {
	adj  []map[int]struct{}
	best []int
}

// MaxClique returns the size of the largest clique found in g together
// with one witness vertex set (current indices of g). The empty graph
// yields (0, nil).
//
// Pivot rule: at every node choose u ∈ P ∪ X maximizing |P ∩ N(u)| and
// branch only on P ∖ N(u); this prunes recursion into cliques that would
// be rediscovered through the pivot's neighborhood.
//
// Complexity: O(3^(n/3)) worst case (Moon–Moser bound).
func MaxClique(g quotient.Graph) (int, []int) {
	s := &state{adj: g.Adj}

	p := make([]int, g.N)
	for i := 0; i < g.N; i++ {
		p[i] = i
	}
	s.expand(nil, p, nil)

	return len(s.best), s.best
}

// expand grows the clique R using candidates P while excluding X.
// P and X are owned by the caller and left unmodified on return.
func (s *state) expand(r, p, x []int) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > len(s.best) {
			s.best = append([]int(nil), r...)
		}

		return
	}

	pivot := s.pickPivot(p, x)

	// Branch candidates: P without the pivot's neighborhood.
	branch := make([]int, 0, len(p))
	for _, v := range p {
		if !s.hasEdge(pivot, v) {
			branch = append(branch, v)
		}
	}

	// Working copies so sibling branches see v moved from P to X.
	curP := append([]int(nil), p...)
	curX := append([]int(nil), x...)

	var v int
	for _, v = range branch {
		newP := intersectNeighbors(curP, s.adj[v])
		newX := intersectNeighbors(curX, s.adj[v])
		s.expand(append(r, v), newP, newX)

		curP = remove(curP, v)
		curX = append(curX, v)
		if len(curP) == 0 {
			break
		}
	}
}

// pickPivot selects u ∈ P ∪ X maximizing |P ∩ N(u)|; the first maximum
// in scan order (P before X) wins.
func (s *state) pickPivot(p, x []int) int {
	pivot, maxCount := -1, -1
	scan := func(u int) {
		count := 0
		for _, w := range p {
			if s.hasEdge(u, w) {
				count++
			}
		}
		if count > maxCount {
			maxCount = count
			pivot = u
		}
	}
	for _, u := range p {
		scan(u)
	}
	for _, u := range x {
		scan(u)
	}

	return pivot
}

func (s *state) hasEdge(u, v int) bool {
	if u < 0 {
		return false
	}
	_, ok := s.adj[u][v]

	return ok
}

// intersectNeighbors keeps the members of set that are neighbors of nbrs' owner.
func intersectNeighbors(set []int, nbrs map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for _, w := range set {
		if _, ok := nbrs[w]; ok {
			out = append(out, w)
		}
	}

	return out
}

// remove deletes the first occurrence of v, preserving order.
func remove(set []int, v int) []int {
	for i, w := range set {
		if w == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}

	return set
}
