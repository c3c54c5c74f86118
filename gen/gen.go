package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chromatic/quotient"
)

// Sentinel errors of the instance generators.
var (
	// ErrTooFewVertices is returned when n is below a family's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrInvalidProbability is returned when an edge probability falls
	// outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability outside [0,1]")

	// ErrInvalidOffset is returned when a circulant offset is outside
	// [1, n/2].
	ErrInvalidOffset = errors.New("gen: circulant offset out of range")
)

// addEdge inserts an undirected edge in place; generators own their
// graphs, so they skip the copy-on-write path of quotient.AddEdge.
func addEdge(g quotient.Graph, i, j int) {
	if i == j {
		return
	}
	g.Adj[i][j] = struct{}{}
	g.Adj[j][i] = struct{}{}
}

// Cycle builds the simple cycle C_n, n ≥ 3. Chromatic number 2 for
// even n, 3 for odd n.
func Cycle(n int) (quotient.Graph, error) {
	if n < 3 {
		return quotient.Graph{}, fmt.Errorf("%w: Cycle needs n >= 3, got %d", ErrTooFewVertices, n)
	}
	g := quotient.NewGraph(n)
	for i := 0; i < n; i++ {
		addEdge(g, i, (i+1)%n)
	}

	return g, nil
}

// Complete builds K_n, n ≥ 1. Chromatic number n.
func Complete(n int) (quotient.Graph, error) {
	if n < 1 {
		return quotient.Graph{}, fmt.Errorf("%w: Complete needs n >= 1, got %d", ErrTooFewVertices, n)
	}
	g := quotient.NewGraph(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			addEdge(g, i, j)
		}
	}

	return g, nil
}

// Circulant builds the circulant graph on n vertices where vertex v is
// adjacent to v±d (mod n) for every offset d. Offsets must lie in
// [1, n/2]; duplicates are absorbed by set semantics.
func Circulant(n int, offsets ...int) (quotient.Graph, error) {
	if n < 3 {
		return quotient.Graph{}, fmt.Errorf("%w: Circulant needs n >= 3, got %d", ErrTooFewVertices, n)
	}
	for _, d := range offsets {
		if d < 1 || d > n/2 {
			return quotient.Graph{}, fmt.Errorf("%w: offset %d for n=%d", ErrInvalidOffset, d, n)
		}
	}
	g := quotient.NewGraph(n)
	for v := 0; v < n; v++ {
		for _, d := range offsets {
			addEdge(g, v, (v+d)%n)
		}
	}

	return g, nil
}

// Petersen builds the Petersen graph: outer 5-cycle 0..4, inner
// pentagram 5..9, spokes i - i+5. Chromatic number 3.
func Petersen() quotient.Graph {
	g := quotient.NewGraph(10)
	for i := 0; i < 5; i++ {
		addEdge(g, i, (i+1)%5)
		addEdge(g, i, i+5)
		addEdge(g, 5+i, 5+(i+2)%5)
	}

	return g
}

// RandomSparse builds an Erdős–Rényi graph G(n, p): each unordered
// pair {i, j}, i < j, becomes an edge independently with probability p.
// Trials run in ascending (i, j) order from a source seeded with seed,
// so the instance is a pure function of (n, p, seed).
func RandomSparse(n int, p float64, seed int64) (quotient.Graph, error) {
	if n < 1 {
		return quotient.Graph{}, fmt.Errorf("%w: RandomSparse needs n >= 1, got %d", ErrTooFewVertices, n)
	}
	if p < 0 || p > 1 {
		return quotient.Graph{}, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	g := quotient.NewGraph(n)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p {
				addEdge(g, i, j)
			}
		}
	}

	return g, nil
}
