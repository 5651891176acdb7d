// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcomm/core"
	"github.com/katalvlaran/localcomm/dfs"
)

// buildChain creates an undirected chain N0-N1-…-N(n-1).
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 0)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PreOrderIsDeterministic(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.Order)
	assert.Equal(t, "A", res.Parent["B"])
	assert.Equal(t, []string{"A"}, res.Roots)
}

func TestDFS_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 50000
	g := buildChain(t, n)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
}

func TestDFS_FilterRestrictsWalk(t *testing.T) {
	g := buildChain(t, 5)
	allowed := map[string]bool{"N0": true, "N1": true, "N3": true}

	res, err := dfs.DFS(g, "N0", dfs.WithFilterNeighbor(func(id string) bool { return allowed[id] }))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("b", "a", 0)
	_, _ = g.AddEdge("x", "y", 0)
	_, _ = g.AddEdge("y", "z", 0)
	require.NoError(t, g.AddVertex("m"))

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"m"}, {"x", "y", "z"}}, comps)
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
