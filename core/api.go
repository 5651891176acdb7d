// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1). Read lock only.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// CachesMeasures reports whether new edges get a measure cache by default.
//
// Complexity: O(1). Read lock only.
func (g *Graph) CachesMeasures() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cacheMeasures
}

// GraphStats is a compact snapshot of graph size and degree distribution.
type GraphStats struct {
	Vertices  int
	Edges     int
	MinDegree int
	MaxDegree int
	// MeanDegree is 2|E|/|V|, zero for an empty graph.
	MeanDegree float64
	// Isolated counts vertices of degree zero.
	Isolated int
}

// Stats computes a consistent snapshot of vertex/edge counts and degree bounds.
//
// Implementation:
//   - Single pass over the adjacency buckets under the read lock.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{Vertices: len(g.vertices), Edges: g.edgeCount}
	if s.Vertices == 0 {
		return s
	}
	first := true
	for _, bucket := range g.adjacency {
		d := len(bucket)
		if d == 0 {
			s.Isolated++
		}
		if first || d < s.MinDegree {
			s.MinDegree = d
		}
		if first || d > s.MaxDegree {
			s.MaxDegree = d
		}
		first = false
	}
	s.MeanDegree = float64(2*s.Edges) / float64(s.Vertices)

	return s
}
