package quotient_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/quotient"
)

// buildGraph constructs a graph on n vertices with the given undirected edges.
func buildGraph(t *testing.T, n int, edges [][2]int) quotient.Graph {
	t.Helper()
	g := quotient.NewGraph(n)
	for _, e := range edges {
		g = g.AddEdge(e[0], e[1])
	}
	require.NoError(t, g.Validate())

	return g
}

// origPairs flattens a quotient graph into the set of original-vertex pairs
// forced apart by its current edges, as "min,max" keyed booleans.
func origPairs(g quotient.Graph) map[[2]int]bool {
	pairs := make(map[[2]int]bool)
	for i := 0; i < g.N; i++ {
		for j := range g.Adj[i] {
			for _, a := range g.Mapping[i] {
				for _, b := range g.Mapping[j] {
					lo, hi := a, b
					if lo > hi {
						lo, hi = hi, lo
					}
					pairs[[2]int{lo, hi}] = true
				}
			}
		}
	}

	return pairs
}

func TestNewGraph_IdentityMapping(t *testing.T) {
	g := quotient.NewGraph(4)
	require.NoError(t, g.Validate())
	assert.Equal(t, 4, g.N)
	assert.Equal(t, 4, g.OrigN)
	assert.Equal(t, 0, g.EdgeCount())
	for i := 0; i < 4; i++ {
		assert.Equal(t, []int{i}, g.Mapping[i])
	}
}

func TestNewGraph_Empty(t *testing.T) {
	g := quotient.NewGraph(0)
	require.NoError(t, g.Validate())
	assert.Equal(t, 0, g.N)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.ConnectedComponents())
}

func TestAddEdge_SetSemantics(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}})
	once := g.AddEdge(1, 2)
	twice := once.AddEdge(1, 2)

	assert.Equal(t, 2, once.EdgeCount())
	assert.Equal(t, once.EdgeCount(), twice.EdgeCount())
	assert.True(t, twice.HasEdge(1, 2))
	assert.True(t, twice.HasEdge(2, 1))
	require.NoError(t, twice.Validate())
}

func TestAddEdge_Pure(t *testing.T) {
	g := quotient.NewGraph(3)
	_ = g.AddEdge(0, 1)
	assert.Equal(t, 0, g.EdgeCount(), "receiver must stay untouched")
	assert.False(t, g.HasEdge(0, 1))
}

func TestAddEdge_IgnoresOutOfRange(t *testing.T) {
	g := quotient.NewGraph(2)
	out := g.AddEdge(0, 5)
	assert.Equal(t, 0, out.EdgeCount())
	out = g.AddEdge(-1, 1)
	assert.Equal(t, 0, out.EdgeCount())
}

func TestMerge_Shape(t *testing.T) {
	// Path 0-1-2-3; merge the non-adjacent pair (0, 2).
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	m := g.Merge(0, 2)

	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.N)
	assert.Equal(t, 4, m.OrigN)

	// Slot 0 survives carrying {0, 2}; slots shift down past the dropped 2.
	assert.Equal(t, []int{0, 2}, m.Mapping[0])
	assert.Equal(t, []int{1}, m.Mapping[1])
	assert.Equal(t, []int{3}, m.Mapping[2])

	// Merged vertex sees the union of both neighborhoods: {1, 3}.
	assert.True(t, m.HasEdge(0, 1))
	assert.True(t, m.HasEdge(0, 2))
	assert.False(t, m.HasEdge(1, 2))
}

func TestMerge_MappingSizePreserved(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	m := g.Merge(0, 3)
	require.NoError(t, m.Validate())

	var total int
	for i := 0; i < m.N; i++ {
		total += len(m.Mapping[i])
	}
	assert.Equal(t, g.OrigN, total)
	assert.Equal(t, g.N-1, m.N)
}

func TestMerge_Pure(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}})
	_ = g.Merge(0, 2)
	assert.Equal(t, 3, g.N)
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestMerge_CommutativeOnOriginals(t *testing.T) {
	// C5: merging (i, j) either way must force the same original pairs apart.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	ab := g.Merge(0, 2)
	ba := g.Merge(2, 0)
	require.NoError(t, ab.Validate())
	require.NoError(t, ba.Validate())
	assert.Equal(t, origPairs(ab), origPairs(ba))
}

func TestMerge_ChainToClique(t *testing.T) {
	// Repeatedly merging an edgeless graph collapses it to a single vertex.
	g := quotient.NewGraph(4)
	for g.N > 1 {
		g = g.Merge(0, 1)
		require.NoError(t, g.Validate())
	}
	assert.Equal(t, 1, g.N)
	sort.Ints(g.Mapping[0])
	assert.Equal(t, []int{0, 1, 2, 3}, g.Mapping[0])
}

func TestConnectedComponents_TwoTriangles(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []int{0, 1, 2}, comps[0])
	assert.ElementsMatch(t, []int{3, 4, 5}, comps[1])
}

func TestConnectedComponents_Isolated(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 2}})
	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0, 2}, comps[0])
	assert.Equal(t, []int{1}, comps[1])
}

func TestExtractSubgraph(t *testing.T) {
	// Two triangles; extract the second one.
	g := buildGraph(t, 6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	sub := g.ExtractSubgraph([]int{3, 4, 5})

	assert.Equal(t, 3, sub.N)
	assert.Equal(t, 6, sub.OrigN, "OrigN must survive extraction")
	assert.Equal(t, 3, sub.EdgeCount())
	assert.Equal(t, []int{3}, sub.Mapping[0])
	assert.Equal(t, []int{4}, sub.Mapping[1])
	assert.Equal(t, []int{5}, sub.Mapping[2])
	assert.True(t, sub.HasEdge(0, 1))
	assert.True(t, sub.HasEdge(1, 2))
	assert.True(t, sub.HasEdge(0, 2))
}

func TestClone_Independent(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}})
	c := g.Clone()
	c.Adj[0][2] = struct{}{}
	c.Adj[2][0] = struct{}{}
	c.Mapping[0] = append(c.Mapping[0], 99)

	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, []int{0}, g.Mapping[0])
}

func TestValidate_Violations(t *testing.T) {
	g := quotient.NewGraph(2)
	g.Adj[0][0] = struct{}{}
	assert.ErrorIs(t, g.Validate(), quotient.ErrSelfLoop)

	g = quotient.NewGraph(2)
	g.Adj[0][1] = struct{}{} // missing mirror
	assert.ErrorIs(t, g.Validate(), quotient.ErrAsymmetricAdjacency)

	g = quotient.NewGraph(2)
	g.Mapping[1] = []int{0} // duplicate original
	assert.ErrorIs(t, g.Validate(), quotient.ErrBrokenMapping)
}
