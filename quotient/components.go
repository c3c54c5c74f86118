// Package quotient - connected-component pre-pass and subgraph extraction.
package quotient

import "sort"

// ConnectedComponents finds the connected components of g by BFS.
// Components are returned in increasing order of their smallest vertex;
// inside a component, vertices appear in BFS visit order with neighbors
// expanded in ascending index order, so the result is deterministic.
//
// Time:   O(n + m·log m) for the sorted neighbor expansion.
// Memory: O(n).
func (g Graph) ConnectedComponents() [][]int {
	visited := make([]bool, g.N)
	var comps [][]int

	var start int
	for start = 0; start < g.N; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		comp := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			nbrs := make([]int, 0, len(g.Adj[v]))
			for w := range g.Adj[v] {
				nbrs = append(nbrs, w)
			}
			sort.Ints(nbrs)
			for _, w := range nbrs {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
					comp = append(comp, w)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ExtractSubgraph builds the induced subgraph of g on the given vertices.
// Position k of vertices becomes current vertex k of the result; Mapping
// rows carry over, and OrigN is preserved so colorings of the subgraph
// still lift to the full original vertex set.
//
// Contract: vertices holds distinct valid current indices of g.
//
// Time: O(k²) for k = len(vertices).
func (g Graph) ExtractSubgraph(vertices []int) Graph {
	k := len(vertices)
	sub := Graph{
		N:       k,
		OrigN:   g.OrigN,
		Adj:     make([]map[int]struct{}, k),
		Mapping: make([][]int, k),
	}
	var i, j int
	for i = 0; i < k; i++ {
		sub.Adj[i] = make(map[int]struct{})
		sub.Mapping[i] = append([]int(nil), g.Mapping[vertices[i]]...)
	}
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			if g.HasEdge(vertices[i], vertices[j]) {
				sub.Adj[i][j] = struct{}{}
				sub.Adj[j][i] = struct{}{}
			}
		}
	}

	return sub
}
