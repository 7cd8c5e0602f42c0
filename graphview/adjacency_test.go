package graphview_test

import (
	"testing"

	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdjGraph_AddNode verifies dense index assignment follows insertion
// order and re-adding is a no-op.
func TestAdjGraph_AddNode(t *testing.T) {
	g := graphview.New()

	i, err := g.AddNode("A")
	require.NoError(t, err)
	assert.Equal(t, 0, i, "first node gets index 0")

	i, err = g.AddNode("B")
	require.NoError(t, err)
	assert.Equal(t, 1, i, "second node gets index 1")

	i, err = g.AddNode("A")
	require.NoError(t, err)
	assert.Equal(t, 0, i, "re-adding keeps the original index")

	_, err = g.AddNode("")
	assert.ErrorIs(t, err, graphview.ErrEmptyNodeID, "empty ID must error")
}

// TestAdjGraph_UndirectedNeighbors verifies adjacency symmetry for the
// undirected default.
func TestAdjGraph_UndirectedNeighbors(t *testing.T) {
	g := graphview.New()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"A", "C"}, g.OutNeighbors("B"))
	assert.Equal(t, g.OutNeighbors("B"), g.InNeighbors("B"), "undirected: out == in")
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

// TestAdjGraph_DirectedNeighbors verifies out/in separation under WithDirected.
func TestAdjGraph_DirectedNeighbors(t *testing.T) {
	g := graphview.New(graphview.WithDirected())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, g.OutNeighbors("A"))
	assert.Empty(t, g.InNeighbors("A"))
	assert.Equal(t, []string{"A"}, g.InNeighbors("B"))
	assert.Empty(t, g.OutNeighbors("B"))
}

// TestAdjGraph_EdgeHandles verifies stable handles and endpoint resolution.
func TestAdjGraph_EdgeHandles(t *testing.T) {
	g := graphview.New()
	h0, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	h1, err := g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, h0)
	assert.Equal(t, 1, h1)

	from, to, err := g.EdgeEndpoints(h1)
	require.NoError(t, err)
	assert.Equal(t, "B", from)
	assert.Equal(t, "C", to)

	_, _, err = g.EdgeEndpoints(99)
	assert.ErrorIs(t, err, graphview.ErrEdgeNotFound)
}

// TestAdjGraph_LoopAndMultiGuards verifies guard errors and their opt-outs.
func TestAdjGraph_LoopAndMultiGuards(t *testing.T) {
	g := graphview.New()
	_, err := g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, graphview.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	assert.ErrorIs(t, err, graphview.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 2)
	assert.ErrorIs(t, err, graphview.ErrMultiEdgeNotAllowed, "reverse duplicate is still parallel when undirected")

	permissive := graphview.New(graphview.WithLoops(), graphview.WithMultiEdges())
	_, err = permissive.AddEdge("A", "A", 1)
	assert.NoError(t, err)
	_, err = permissive.AddEdge("A", "B", 1)
	assert.NoError(t, err)
	_, err = permissive.AddEdge("A", "B", 2)
	assert.NoError(t, err)
}

// TestAdjGraph_Degree verifies the Degree helper used by link-force defaults.
func TestAdjGraph_Degree(t *testing.T) {
	g := graphview.New()
	_, _ = g.AddEdge("hub", "a", 1)
	_, _ = g.AddEdge("hub", "b", 1)
	_, _ = g.AddEdge("hub", "c", 1)

	assert.Equal(t, 3, graphview.Degree(g, "hub"))
	assert.Equal(t, 1, graphview.Degree(g, "a"))
	assert.Equal(t, 0, graphview.Degree(g, "ghost"))
}

// TestAdjGraph_ToIndexStability verifies ToIndex/NodeAt round-trip over the
// whole node set.
func TestAdjGraph_ToIndexStability(t *testing.T) {
	g := graphview.New()
	ids := []string{"w", "x", "y", "z"}
	for _, id := range ids {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	for want, id := range ids {
		got, ok := g.ToIndex(id)
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, id, g.NodeAt(got))
	}

	_, ok := g.ToIndex("missing")
	assert.False(t, ok)
}

// TestConnectedComponents verifies component discovery on a two-island graph.
func TestConnectedComponents(t *testing.T) {
	g := graphview.New()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("x", "y", 1)

	comps := graphview.ConnectedComponents(g)
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, comps[0])
	assert.ElementsMatch(t, []string{"x", "y"}, comps[1])
}

// TestConnectedComponents_Directed verifies weak connectivity on a directed
// chain.
func TestConnectedComponents_Directed(t *testing.T) {
	g := graphview.New(graphview.WithDirected())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("c", "b", 1) // only reachable against edge direction

	comps := graphview.ConnectedComponents(g)
	require.Len(t, comps, 1, "weak connectivity ignores direction")
	assert.ElementsMatch(t, []string{"a", "b", "c"}, comps[0])
}
