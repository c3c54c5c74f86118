// Package quotient - the two Zykov branching operators.
package quotient

// Merge derives the graph in which vertices i and j are identified
// (the Zykov "same color" branch).
//
// The surviving slot is i; slot j is discarded and every current index
// above j shifts down by one, preserving relative order. The merged
// vertex inherits the union of both neighbor sets and the concatenation
// of both Mapping rows (i's originals first).
//
// Contract: 0 ≤ i, j < g.N, i ≠ j, and i, j non-adjacent. Callers obtain
// such pairs from branching-pair selection. If i and j were adjacent the
// would-be self-loop is silently dropped, which is sound only under the
// non-adjacency contract.
//
// Complexity: O(n²) for the adjacency rebuild.
func (g Graph) Merge(i, j int) Graph {
	out := Graph{
		N:       g.N - 1,
		OrigN:   g.OrigN,
		Adj:     make([]map[int]struct{}, g.N-1),
		Mapping: make([][]int, g.N-1),
	}

	// Surviving old indices, in order, with slot j removed.
	oldIndex := make([]int, 0, g.N-1)
	var k int
	for k = 0; k < g.N; k++ {
		if k == j {
			continue
		}
		oldIndex = append(oldIndex, k)
	}

	// Mapping rows: the merged slot takes i's originals followed by j's.
	var a int
	for a = 0; a < out.N; a++ {
		old := oldIndex[a]
		if old == i {
			row := make([]int, 0, len(g.Mapping[i])+len(g.Mapping[j]))
			row = append(row, g.Mapping[i]...)
			row = append(row, g.Mapping[j]...)
			out.Mapping[a] = row
		} else {
			out.Mapping[a] = append([]int(nil), g.Mapping[old]...)
		}
		out.Adj[a] = make(map[int]struct{})
	}

	// Rebuild adjacency: survivors keep their edges; the merged vertex is
	// adjacent to w iff w was adjacent to i or to j.
	var (
		b         int
		connected bool
	)
	for a = 0; a < out.N; a++ {
		for b = a + 1; b < out.N; b++ {
			origA, origB := oldIndex[a], oldIndex[b]
			switch {
			case origA == i:
				connected = g.HasEdge(i, origB) || g.HasEdge(j, origB)
			case origB == i:
				connected = g.HasEdge(origA, i) || g.HasEdge(origA, j)
			default:
				connected = g.HasEdge(origA, origB)
			}
			if connected {
				out.Adj[a][b] = struct{}{}
				out.Adj[b][a] = struct{}{}
			}
		}
	}

	return out
}

// AddEdge derives the graph with edge {i, j} added (the Zykov
// "different color" branch). Adding an existing edge yields a graph
// structurally identical to g; out-of-range indices yield a plain copy.
// Complexity: O(n + m) for the clone.
func (g Graph) AddEdge(i, j int) Graph {
	out := g.Clone()
	if i >= 0 && i < g.N && j >= 0 && j < g.N && i != j {
		out.Adj[i][j] = struct{}{}
		out.Adj[j][i] = struct{}{}
	}

	return out
}
