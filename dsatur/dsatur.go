// Package dsatur - saturation-ordered greedy coloring.
package dsatur

import "github.com/katalvlaran/chromatic/quotient"

// Color greedily colors g and returns the number of colors used together
// with the per-vertex assignment (current indices of g, colors in [0, k)).
// The empty graph yields (0, empty slice). Colors never exceed n-1, so
// k ≤ n always holds.
//
// Complexity: O(n² + n·m) time, O(n) extra space.
func Color(g quotient.Graph) (int, []int) {
	n := g.N
	color := make([]int, n)
	saturation := make([]int, n)
	degree := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		color[i] = -1
		degree[i] = g.Degree(i)
	}

	used := make([]bool, n)
	var step int
	for step = 0; step < n; step++ {
		v := pickNext(color, saturation, degree)
		if v == -1 {
			break
		}

		// Smallest color not present among colored neighbors.
		for i = range used {
			used[i] = false
		}
		var w int
		for w = range g.Adj[v] {
			if color[w] != -1 {
				used[color[w]] = true
			}
		}
		c := 0
		for c < n && used[c] {
			c++
		}
		color[v] = c

		// Raise saturation of uncolored neighbors with no other neighbor
		// already carrying c (v itself is excluded from the scan).
		for w = range g.Adj[v] {
			if color[w] != -1 {
				continue
			}
			seesC := false
			for x := range g.Adj[w] {
				if x != v && color[x] == c {
					seesC = true
					break
				}
			}
			if !seesC {
				saturation[w]++
			}
		}
	}

	var usedColors int
	for i = 0; i < n; i++ {
		if color[i]+1 > usedColors {
			usedColors = color[i] + 1
		}
	}

	return usedColors, color
}

// pickNext selects the uncolored vertex with maximal saturation, breaking
// ties by higher degree, then by lowest index (strict improvement scan).
func pickNext(color, saturation, degree []int) int {
	bestV, bestSat, bestDeg := -1, -1, -1
	for v := 0; v < len(color); v++ {
		if color[v] != -1 {
			continue
		}
		if saturation[v] > bestSat || (saturation[v] == bestSat && degree[v] > bestDeg) {
			bestV = v
			bestSat = saturation[v]
			bestDeg = degree[v]
		}
	}

	return bestV
}
