// SPDX-License-Identifier: MIT
package detector_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/detector"
)

func TestLWPModularity(t *testing.T) {
	g := barbell(t)
	require.NoError(t, g.AddVertex("lonely"))

	left, err := community.NewWithMembers(0, g, barbellLeft)
	require.NoError(t, err)
	q, err := detector.LWPModularity(left)
	require.NoError(t, err)
	assert.Equal(t, 10.0, q)

	whole, err := community.NewWithMembers(0, g, append(append([]string{}, barbellLeft...), "b0", "b1", "b2", "b3", "b4"))
	require.NoError(t, err)
	q, err = detector.LWPModularity(whole)
	require.NoError(t, err)
	assert.Equal(t, detector.SeparatedModularity, q)

	lonely, err := community.NewWithMembers(0, g, []string{"lonely"})
	require.NoError(t, err)
	q, err = detector.LWPModularity(lonely)
	require.NoError(t, err)
	assert.Zero(t, q)

	empty, err := community.New(0, g)
	require.NoError(t, err)
	q, err = detector.LWPModularity(empty)
	require.NoError(t, err)
	assert.Zero(t, q)

	_, err = detector.LWPModularity(nil)
	assert.ErrorIs(t, err, community.ErrUninitializedCommunity)

	require.NoError(t, g.RemoveVertex("a2"))
	_, err = detector.LWPModularity(left)
	assert.ErrorIs(t, err, community.ErrInvalidCommunity)
}

func TestLWP_EmptyResultIsWarned(t *testing.T) {
	g := barbell(t)
	require.NoError(t, g.AddVertex("lonely"))

	logger, hook := test.NewNullLogger()
	d := detector.NewLWP(detector.WithLogger(logrus.NewEntry(logger)))

	c, err := d.Detect(g, "lonely")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 1, c.ID())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "lwp", hook.LastEntry().Data["algorithm"])
}

func TestLWP_WholeComponent(t *testing.T) {
	// A triangle on its own: absorbing it leaves no external edge.
	g := barbell(t)
	for _, p := range [][2]string{{"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	c, err := detector.NewLWP().Detect(g, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, c.Members())
}
