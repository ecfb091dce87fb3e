package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborescent/morphotree/graph"
)

func TestNewGraphRejectsNegativeSize(t *testing.T) {
	_, err := graph.NewGraph(-1)
	require.ErrorIs(t, err, graph.ErrNegativeSize)
}

func TestAddEdgeAndEndpoints(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)

	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NotEqual(t, e0, e1)

	u, v, err := g.EdgeEndpoints(e0)
	require.NoError(t, err)
	require.Equal(t, 0, u)
	require.Equal(t, 1, v)

	other, err := g.OtherEndpoint(e0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, other)

	_, err = g.OtherEndpoint(e0, 2)
	require.ErrorIs(t, err, graph.ErrNotAnEndpoint)
}

func TestParallelEdgesPreserved(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)

	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NotEqual(t, e0, e1)
	require.Len(t, g.OutEdges(0), 2)
	require.Len(t, g.OutEdges(1), 2)
}

func TestRemoveEdgeRetiresID(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)

	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(e0))
	require.Empty(t, g.OutEdges(0))

	_, _, err = g.EdgeEndpoints(e0)
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)

	// A freshly added edge must not reuse the retired id.
	e1, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NotEqual(t, e0, e1)
}

func TestSetEndpointRelabelsInPlace(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)

	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	p := g.AddVertex()
	require.NoError(t, g.SetEndpoint(e0, 0, p))

	u, v, err := g.EdgeEndpoints(e0)
	require.NoError(t, err)
	require.Equal(t, p, u)
	require.Equal(t, 1, v)

	require.Contains(t, g.OutEdges(p), e0)
	require.NotContains(t, g.OutEdges(0), e0)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	e0, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge(e0))

	_, _, err = g.EdgeEndpoints(e0)
	require.NoError(t, err, "removing an edge on the clone must not affect the original")
}

func TestEdgesDeterministicOrder(t *testing.T) {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}

	edges := g.Edges()
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
}
