package solver

import "github.com/katalvlaran/chromatic/quotient"

// SelectBranchingPair returns the non-adjacent vertex pair (i, j), i < j,
// of g with maximal degree sum, scanning pairs in lexicographic order and
// keeping the first best. When g is complete (no candidate pair exists)
// it returns (-1, -1), which ends the Zykov recursion at that node.
//
// Complexity: O(n²) time, O(1) extra space.
func SelectBranchingPair(g quotient.Graph) (int, int) {
	bestI, bestJ, bestScore := -1, -1, -1
	var i, j int
	for i = 0; i < g.N; i++ {
		for j = i + 1; j < g.N; j++ {
			if g.HasEdge(i, j) {
				continue
			}
			score := g.Degree(i) + g.Degree(j)
			if score > bestScore {
				bestI, bestJ, bestScore = i, j, score
			}
		}
	}

	return bestI, bestJ
}
