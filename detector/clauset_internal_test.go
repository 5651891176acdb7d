// SPDX-License-Identifier: MIT
package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcomm/builder"
	"github.com/katalvlaran/localcomm/core"
)

// boundaryRatio recomputes R = I/T from scratch for comparison with the running value.
func boundaryRatio(t *testing.T, s *clausetState) float64 {
	t.Helper()
	seen := make(map[[2]string]bool)
	in, total := 0, 0
	for b := range s.b {
		nbrs, err := s.g.NeighborIDs(b)
		require.NoError(t, err)
		for _, x := range nbrs {
			key := [2]string{b, x}
			if x < b {
				key = [2]string{x, b}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			total++
			if s.c.Contains(x) {
				in++
			}
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(in) / float64(total)
}

func TestClauset_IncrementalMatchesRecount(t *testing.T) {
	graphs := map[string]builder.Constructor{
		"barbell": builder.Barbell(5),
		"cycle":   builder.Cycle(8),
		"dense":   builder.RandomDense(25, 0.2),
	}
	for name, ctor := range graphs {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, ctor)
		require.NoError(t, err, name)
		seed := g.Vertices()[0]

		c, err := seedCommunity(g, seed)
		require.NoError(t, err)
		s := &clausetState{g: g, c: c, b: map[string]struct{}{seed: {}}, u: map[string]struct{}{}, nbrs: map[string][]string{}}
		nbrs, err := s.neighbors(seed)
		require.NoError(t, err)
		for _, n := range nbrs {
			s.u[n] = struct{}{}
		}
		s.t = len(nbrs)

		for step := 0; step < 12; step++ {
			m, ok, err := s.bestMove()
			require.NoError(t, err)
			if !ok {
				break
			}
			require.NoError(t, s.apply(m))
			assert.InDelta(t, boundaryRatio(t, s), s.r, 1e-9, "%s step %d", name, step)
		}
	}
}

func TestClauset_BarbellRatios(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMeasureCache()}, nil, builder.Barbell(5))
	require.NoError(t, err)
	c, err := seedCommunity(g, "a0")
	require.NoError(t, err)
	s := &clausetState{g: g, c: c, b: map[string]struct{}{"a0": {}}, u: map[string]struct{}{}, nbrs: map[string][]string{}}
	for _, n := range []string{"a1", "a2", "a3", "a4"} {
		s.u[n] = struct{}{}
	}
	s.t = 4

	want := []float64{1.0 / 7, 1.0 / 3, 0.6, 0.8}
	for i, r := range want {
		m, ok, err := s.bestMove()
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, s.apply(m))
		assert.InDelta(t, r, s.r, 1e-9, "step %d", i)
	}
	_, ok, err := s.bestMove()
	require.NoError(t, err)
	assert.False(t, ok, "b0 would lower R")
}
