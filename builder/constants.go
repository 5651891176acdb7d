// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by fixture constructors.
package builder

// Method tags prefix constructor errors.
const (
	MethodComplete    = "Complete"
	MethodPath        = "Path"
	MethodCycle       = "Cycle"
	MethodStar        = "Star"
	MethodBarbell     = "Barbell"
	MethodRandomDense = "RandomDense"
	MethodMixture     = "CommunityMixture"
)

// CenterVertexID is the hub of a Star.
const CenterVertexID = "Center"

// Minimum sizes per topology.
const (
	MinCompleteNodes = 1
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinBarbellClique = 2
	MinDenseNodes    = 1
)

// DefaultEdgeWeight is the weight given to edges of weighted graphs when no
// WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// Probability bounds, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
