// SPDX-License-Identifier: MIT
package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcomm/bridging"
	"github.com/katalvlaran/localcomm/builder"
	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
	"github.com/katalvlaran/localcomm/detector"
)

var barbellLeft = []string{"a0", "a1", "a2", "a3", "a4"}

// barbell returns two K5 cliques a0..a4 and b0..b4 joined by a4–b0.
func barbell(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMeasureCache()}, nil, builder.Barbell(5))
	require.NoError(t, err)
	return g
}

// cliqueWithPendant returns K4 over A,B,C,E plus the pendant edge A–D.
func cliqueWithPendant(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string { return []string{"A", "B", "C", "E"}[i] })},
		builder.Complete(4))
	require.NoError(t, err)
	_, err = g.AddEdge("A", "D", 0)
	require.NoError(t, err)
	return g
}

func mustNew(t *testing.T, kind detector.Kind, mutate func(*detector.Settings)) detector.Detector {
	t.Helper()
	s := detector.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	d, err := detector.New(kind, s)
	require.NoError(t, err)
	return d
}

func TestNeighborhood_Path(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(5))
	require.NoError(t, err)

	tests := []struct {
		hops int
		want []string
	}{
		{0, []string{"C"}},
		{1, []string{"B", "C", "D"}},
		{2, []string{"A", "B", "C", "D", "E"}},
		{9, []string{"A", "B", "C", "D", "E"}},
	}
	for _, tc := range tests {
		d, err := detector.NewNeighborhood(detector.NeighborhoodConfig{Hops: tc.hops})
		require.NoError(t, err)
		c, err := d.Detect(g, "C")
		require.NoError(t, err)
		assert.Equal(t, tc.want, c.Members(), "hops=%d", tc.hops)
		assert.Equal(t, "C", c.Name())
		assert.Equal(t, 1, c.ID())
	}
}

func TestBridgeBounding_StopsAtPendant(t *testing.T) {
	g := cliqueWithPendant(t)

	for _, m := range []string{"elb", "elb2"} {
		d := mustNew(t, detector.KindBridgeBounding, func(s *detector.Settings) {
			s.BridgeBounding = detector.BridgeBoundingConfig{Measure: m, Threshold: 0.5}
		})
		c, err := d.Detect(g, "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "E"}, c.Members(), "measure %s", m)

		c, err = d.Detect(g, "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"D"}, c.Members(), "measure %s", m)
	}
}

func TestBridgeBounding_ThresholdOpensEverything(t *testing.T) {
	g := cliqueWithPendant(t)
	d := mustNew(t, detector.KindBridgeBounding, func(s *detector.Settings) {
		s.BridgeBounding.Threshold = 1.0
	})
	c, err := d.Detect(g, "D")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Size())
}

// triangleWithPendant returns the triangle A,B,C plus the pendant edge A–D.
// Every edge has an endpoint of degree ≤ 2, so every ELB score is 1.0.
func triangleWithPendant(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"A", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestBridgeBounding_TriangleAllEdgesBridge(t *testing.T) {
	g := triangleWithPendant(t)

	for _, m := range []string{"elb", "elb2"} {
		calc, err := bridging.NewCalculator(g, bridging.Measure(m))
		require.NoError(t, err)
		for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"A", "D"}} {
			score, serr := calc.Between(e[0], e[1])
			require.NoError(t, serr)
			assert.Equal(t, 1.0, score, "%s %s-%s", m, e[0], e[1])
		}

		for _, threshold := range []float64{0.5, 0.99} {
			d := mustNew(t, detector.KindBridgeBounding, func(s *detector.Settings) {
				s.BridgeBounding = detector.BridgeBoundingConfig{Measure: m, Threshold: threshold}
			})
			c, derr := d.Detect(g, "A")
			require.NoError(t, derr)
			assert.Equal(t, []string{"A"}, c.Members(), "measure %s threshold %g", m, threshold)
		}

		d := mustNew(t, detector.KindBridgeBounding, func(s *detector.Settings) {
			s.BridgeBounding = detector.BridgeBoundingConfig{Measure: m, Threshold: 1.0}
		})
		c, err := d.Detect(g, "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, c.Members(), "measure %s", m)
	}
}

func TestBarbell_SplitsAtBridge(t *testing.T) {
	g := barbell(t)
	for _, kind := range []detector.Kind{detector.KindBagrow, detector.KindClauset, detector.KindLWP} {
		d := mustNew(t, kind, nil)
		c, err := d.Detect(g, "a0")
		require.NoError(t, err, kind)
		assert.Equal(t, barbellLeft, c.Members(), kind)
		assert.Equal(t, 1, c.ID(), kind)
	}
}

func TestBarbell_WeightsIgnored(t *testing.T) {
	weighted, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted(), core.WithMeasureCache()},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
		builder.Barbell(5))
	require.NoError(t, err)
	for _, e := range weighted.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
	plain := barbell(t)

	for _, kind := range detector.Kinds() {
		d := mustNew(t, kind, nil)
		want, err := d.Detect(plain, "a0")
		require.NoError(t, err, kind)
		got, err := d.Detect(weighted, "a0")
		require.NoError(t, err, kind)
		assert.Equal(t, want.Members(), got.Members(), kind)
	}
}

func TestBarbell_SizeCaps(t *testing.T) {
	g := barbell(t)

	d := mustNew(t, detector.KindClauset, func(s *detector.Settings) { s.Clauset.TargetSize = 3 })
	c, err := d.Detect(g, "a0")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())
	assert.True(t, c.Contains("a0"))

	d = mustNew(t, detector.KindBagrow, func(s *detector.Settings) { s.Bagrow.MaxSize = 3 })
	c, err = d.Detect(g, "a0")
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a1", "a2"}, c.Members())

	d = mustNew(t, detector.KindBagrow, func(s *detector.Settings) { s.Bagrow.MaxSize = 1 })
	c, err = d.Detect(g, "a0")
	require.NoError(t, err)
	assert.Equal(t, []string{"a0"}, c.Members())
}

func TestDetect_InputErrors(t *testing.T) {
	g := barbell(t)
	for _, kind := range detector.Kinds() {
		d := mustNew(t, kind, nil)

		_, err := d.Detect(nil, "a0")
		assert.ErrorIs(t, err, detector.ErrGraphNil, kind)

		_, err = d.Detect(g, "zz")
		assert.ErrorIs(t, err, community.ErrVertexNotInGraph, kind)
	}
}

func TestDetect_IsolatedSeed(t *testing.T) {
	g := barbell(t)
	require.NoError(t, g.AddVertex("lonely"))

	for _, kind := range []detector.Kind{detector.KindNeighborhood, detector.KindBridgeBounding, detector.KindBagrow, detector.KindClauset} {
		c, err := mustNew(t, kind, nil).Detect(g, "lonely")
		require.NoError(t, err, kind)
		assert.Equal(t, []string{"lonely"}, c.Members(), kind)
	}
}

func TestConfigValidation(t *testing.T) {
	_, err := detector.NewNeighborhood(detector.NeighborhoodConfig{Hops: -1})
	assert.ErrorIs(t, err, detector.ErrInvalidConfig)

	_, err = detector.NewBridgeBounding(detector.BridgeBoundingConfig{Measure: "jaccard", Threshold: 0.5})
	assert.ErrorIs(t, err, detector.ErrInvalidConfig)

	_, err = detector.NewBagrow(detector.BagrowConfig{MaxSize: 0})
	assert.ErrorIs(t, err, detector.ErrInvalidConfig)

	_, err = detector.NewClauset(detector.ClausetConfig{TargetSize: 0})
	assert.ErrorIs(t, err, detector.ErrInvalidConfig)
}

func TestFactory(t *testing.T) {
	for _, kind := range detector.Kinds() {
		d := mustNew(t, kind, nil)
		assert.Equal(t, string(kind), d.Name())
	}

	k, err := detector.ParseKind(" Clauset ")
	require.NoError(t, err)
	assert.Equal(t, detector.KindClauset, k)

	_, err = detector.ParseKind("louvain")
	assert.ErrorIs(t, err, detector.ErrUnknownKind)

	_, err = detector.New("louvain", detector.DefaultSettings())
	assert.ErrorIs(t, err, detector.ErrUnknownKind)

	bad := detector.DefaultSettings()
	bad.Neighborhood.Hops = -2
	_, err = detector.New(detector.KindNeighborhood, bad)
	assert.ErrorIs(t, err, detector.ErrInvalidConfig)
}
