// Package floyd_warshall_test contains unit tests for the Floyd-Warshall
// engine: matrix construction, relaxation through intermediates, diagonal
// semantics, padding via SetTotalNodes, and negative-cycle diagnostics.
package floyd_warshall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind/wayfind/core"
	"github.com/wayfind/wayfind/floyd_warshall"
)

func TestRun_EmptyGraph(t *testing.T) {
	// No nodes at all: a 0×0 matrix, no error.
	eng := floyd_warshall.New()
	d, err := eng.Run()
	require.NoError(t, err)
	assert.Empty(t, d)
}

func TestRun_SingleNodeSelfLoop(t *testing.T) {
	// The diagonal is forced to zero even with an explicit self-loop edge.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 0, 9)

	d, err := eng.Run()
	require.NoError(t, err)
	require.Equal(t, 1, eng.TotalNodes())
	assert.Equal(t, int64(0), d[0][0])
}

func TestRun_TwoNodesOneEdge(t *testing.T) {
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 5)

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(5), d[0][1])
	assert.Equal(t, core.Inf, d[1][0])
}

func TestRun_RelaxThroughIntermediate(t *testing.T) {
	// 0→1 (4), 1→2 (1), 0→2 (7): the two-hop route wins, plus a longer
	// ring exercising several intermediates.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 4)
	eng.SetEdge(1, 2, 1)
	eng.SetEdge(0, 2, 7)
	eng.SetEdge(2, 3, 3)
	eng.SetEdge(3, 4, 2)
	eng.SetEdge(4, 5, 1)
	eng.SetEdge(5, 0, 10)

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(4), d[0][1])
	assert.Equal(t, int64(5), d[0][2])
	assert.Equal(t, int64(8), d[0][3])
	assert.Equal(t, int64(10), d[0][4])
	assert.Equal(t, int64(11), d[0][5])
	assert.Equal(t, int64(14), d[5][1]) // around the ring: 5→0 (10) + 0→1 (4)
}

func TestRun_CompleteGraph(t *testing.T) {
	// 0→1:1, 0→2:2, 1→2:1, 1→0:3, 2→0:4, 2→1:5.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 1)
	eng.SetEdge(0, 2, 2)
	eng.SetEdge(1, 2, 1)
	eng.SetEdge(1, 0, 3)
	eng.SetEdge(2, 0, 4)
	eng.SetEdge(2, 1, 5)

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(1), d[0][1])
	assert.Equal(t, int64(2), d[0][2])
	assert.Equal(t, int64(1), d[1][2])
}

func TestRun_NegativeWeightsNoCycle(t *testing.T) {
	// 0→1 (-2), 1→2 (1), 0→2 (4): best 0→2 is -1 through node 1.
	eng := floyd_warshall.New()
	eng.SetEdges([]core.NodeArcs{
		{Node: 0, Arcs: []core.Arc{{To: 1, Weight: -2}, {To: 2, Weight: 4}}},
		{Node: 1, Arcs: []core.Arc{{To: 2, Weight: 1}}},
	})

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), d[0][1])
	assert.Equal(t, int64(-1), d[0][2])
	// No negative cycle: the diagonal stays at zero.
	for i := 0; i < eng.TotalNodes(); i++ {
		assert.Equal(t, int64(0), d[i][i], "diagonal entry %d", i)
	}
}

func TestRun_NegativeCycleShowsOnDiagonal(t *testing.T) {
	// Cycle 0→1 (1), 1→0 (-3) sums to -2: both diagonal entries go
	// negative — the caller-side cycle diagnostic.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 1)
	eng.SetEdge(1, 0, -3)

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Negative(t, d[0][0])
	assert.Negative(t, d[1][1])
}

func TestRun_DisconnectedWithPadding(t *testing.T) {
	// SetTotalNodes pads the matrix with node 3, unreachable from the rest.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 3)
	eng.SetEdge(1, 2, 4)
	eng.SetTotalNodes(4)

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, core.Inf, d[0][3])
	assert.Equal(t, core.Inf, d[3][0])
	assert.Equal(t, int64(0), d[3][3])
}

func TestRun_SourceOptionIgnored(t *testing.T) {
	// An all-pairs engine accepts core.Source and ignores it; passing one
	// is not an error and does not change the result.
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 2)

	plain, err := eng.Run()
	require.NoError(t, err)
	withSource, err := eng.Run(core.Source(99))
	require.NoError(t, err)
	assert.Equal(t, plain, withSource)
}

func TestRun_DuplicateEdgeLastWriteWins(t *testing.T) {
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 8)
	eng.SetEdge(0, 1, 2) // overwrites the earlier weight

	d, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(2), d[0][1])
}

func TestRun_Idempotent(t *testing.T) {
	eng := floyd_warshall.New()
	eng.SetEdge(0, 1, 1)
	eng.SetEdge(1, 2, -1)

	first, err := eng.Run()
	require.NoError(t, err)
	second, err := eng.Run()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetTotalNodes_OnlyGrows(t *testing.T) {
	eng := floyd_warshall.New()
	eng.SetEdge(0, 4, 1)
	require.Equal(t, 5, eng.TotalNodes())

	eng.SetTotalNodes(3) // lower than current: no effect
	assert.Equal(t, 5, eng.TotalNodes())

	eng.SetTotalNodes(8)
	assert.Equal(t, 8, eng.TotalNodes())
}
