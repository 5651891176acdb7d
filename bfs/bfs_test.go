// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcomm/bfs"
	"github.com/katalvlaran/localcomm/core"
)

// buildPath creates the undirected path A-B-C-D-E.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1], 0)
		require.NoError(t, err)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LayersAndDepths(t *testing.T) {
	g := buildPath(t)

	res, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D", "A", "E"}, res.Order)
	assert.Equal(t, [][]string{{"C"}, {"B", "D"}, {"A", "E"}}, res.Layers)
	assert.Equal(t, 2, res.Depth["E"])

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := buildPath(t)

	res, err := bfs.BFS(g, "C", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, res.Order)

	ball, err := bfs.Within(g, "C", 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "C", "D"}, ball)

	all, err := bfs.Within(g, "A", 10)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("X", "Y", 0)
	_, _ = g.AddEdge("P", "Q", 0)

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	assert.False(t, res.Reached("P"))

	_, err = res.PathTo("P")
	assert.Error(t, err)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildPath(t)

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := buildPath(t)
	stop := errors.New("stop")

	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
