package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/gen"
)

func TestCycle(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, 5, g.N)
	assert.Equal(t, 5, g.EdgeCount())
	for v := 0; v < 5; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}

	_, err = gen.Cycle(2)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := gen.Complete(6)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, 15, g.EdgeCount())

	single, err := gen.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, 0, single.EdgeCount())

	_, err = gen.Complete(0)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)
}

func TestCirculant(t *testing.T) {
	g, err := gen.Circulant(8, 1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, 16, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 3))

	_, err = gen.Circulant(8, 5)
	assert.ErrorIs(t, err, gen.ErrInvalidOffset)
	_, err = gen.Circulant(8, 0)
	assert.ErrorIs(t, err, gen.ErrInvalidOffset)
}

func TestPetersen(t *testing.T) {
	g := gen.Petersen()
	require.NoError(t, g.Validate())
	assert.Equal(t, 10, g.N)
	assert.Equal(t, 15, g.EdgeCount())
	for v := 0; v < 10; v++ {
		assert.Equal(t, 3, g.Degree(v), "Petersen is 3-regular")
	}
}

func TestRandomSparse(t *testing.T) {
	g, err := gen.RandomSparse(20, 0.3, 7)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	again, err := gen.RandomSparse(20, 0.3, 7)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), again.EdgeCount(), "fixed seed reproduces the instance")
	for v := 0; v < g.N; v++ {
		assert.Equal(t, g.Adj[v], again.Adj[v])
	}

	empty, err := gen.RandomSparse(10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := gen.RandomSparse(10, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 45, full.EdgeCount())

	_, err = gen.RandomSparse(10, 1.5, 1)
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)
}
