// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic ordering for Vertices/NeighborIDs/Edges.
//   - Validate constraint enforcement (weights, loops, duplicate edges).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcomm/core"
)

// buildTriangle returns A-B-C-A plus a pendant D attached to A.
func buildTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"A", "D"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("X")) // idempotent
	assert.True(t, g.HasVertex("X"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex("missing"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("X"))
	assert.False(t, g.HasVertex("X"))
}

func TestGraph_VertexLookup(t *testing.T) {
	g := buildTriangle(t)

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, "A", v.ID)
	assert.NotNil(t, v.Metadata)

	_, err = g.Vertex("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	e1, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	e2, err := g.AddEdge("B", "A", 0)
	require.NoError(t, err)
	assert.Same(t, e1, e2, "re-adding an existing pair returns the live payload")
	assert.Equal(t, 1, g.EdgeCount())

	w := core.NewGraph(core.WithWeighted())
	e, err := w.AddEdge("A", "B", 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, e.Weight)
	assert.True(t, w.Weighted())
}

func TestGraph_EdgeLookupIsSymmetric(t *testing.T) {
	g := buildTriangle(t)

	ab, err := g.Edge("A", "B")
	require.NoError(t, err)
	ba, err := g.Edge("B", "A")
	require.NoError(t, err)
	assert.Same(t, ab, ba)
	assert.Equal(t, "B", ab.Other("A"))
	assert.Equal(t, "A", ab.Other("B"))
	assert.Equal(t, "", ab.Other("C"))

	_, err = g.Edge("B", "D")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Edge("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasEdge("A", "Z"))
}

func TestGraph_RemoveEdgeAndVertexUpdateCounts(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, 4, g.EdgeCount())

	require.NoError(t, g.RemoveEdge("C", "A"))
	assert.False(t, g.HasEdge("A", "C"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("C", "A"), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex("A"))
	assert.Equal(t, 1, g.EdgeCount()) // only B-C left
	d, err := g.Degree("D")
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestGraph_DeterministicOrdering(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, nbrs)

	inc, err := g.IncidentEdges("A")
	require.NoError(t, err)
	require.Len(t, inc, 3)
	for i, want := range []string{"B", "C", "D"} {
		assert.Equal(t, want, inc[i].Other("A"))
	}

	edges := g.Edges()
	require.Len(t, edges, 4)
	got := make([]string, 0, len(edges))
	for _, e := range edges {
		a, b := e.From, e.To
		if a > b {
			a, b = b, a
		}
		got = append(got, a+b)
	}
	assert.Equal(t, []string{"AB", "AC", "AD", "BC"}, got)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"A"}, adj["D"])
}

func TestGraph_Degree(t *testing.T) {
	g := buildTriangle(t)

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_SubgraphAndClone(t *testing.T) {
	g := buildTriangle(t, core.WithMeasureCache())

	sub, err := g.Subgraph([]string{"A", "B", "D"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.CachesMeasures())

	_, err = g.Subgraph([]string{"A", "nope"})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	c := g.Clone()
	require.NoError(t, c.RemoveVertex("A"))
	assert.True(t, g.HasVertex("A"), "clone must not alias the source")
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 1, c.EdgeCount())
}

func TestGraph_Stats(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddVertex("lonely"))

	s := g.Stats()
	assert.Equal(t, 5, s.Vertices)
	assert.Equal(t, 4, s.Edges)
	assert.Equal(t, 0, s.MinDegree)
	assert.Equal(t, 3, s.MaxDegree)
	assert.Equal(t, 1, s.Isolated)
	assert.InDelta(t, 1.6, s.MeanDegree, 1e-9)

	assert.Equal(t, core.GraphStats{}, core.NewGraph().Stats())
}
