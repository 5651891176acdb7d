// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and induced subgraphs.
// Determinism:
//   - Clone/Subgraph copy configuration flags and produce fresh edge payloads.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// cloneFlagsLocked returns an empty Graph with the same configuration; caller holds a lock.
func (g *Graph) cloneFlagsLocked() *Graph {
	clone := NewGraph()
	clone.weighted = g.weighted
	clone.cacheMeasures = g.cacheMeasures

	return clone
}

// copyEdgeLocked inserts a fresh copy of e into dst. Cached measures are not
// carried over: they belong to the source topology.
func copyEdgeLocked(dst *Graph, e *Edge) {
	ne := &Edge{From: e.From, To: e.To, Weight: e.Weight}
	if e.cache != nil {
		ne.cache = newMeasureCache()
	}
	dst.adjacency[e.From][e.To] = ne
	dst.adjacency[e.To][e.From] = ne
	dst.edgeCount++
}

// Clone returns a deep copy of the Graph: configuration, vertices, and edges.
// Vertex Metadata maps are shared (shallow).
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneFlagsLocked()
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]*Edge)
	}
	for id, bucket := range g.adjacency {
		for nbr, e := range bucket {
			if id < nbr {
				copyEdgeLocked(clone, e)
			}
		}
	}

	return clone
}

// Subgraph returns the subgraph induced by ids: those vertices plus every edge
// with both endpoints among them.
//
// Errors:
//   - ErrEmptyVertexID: any id is empty.
//   - ErrVertexNotFound: any id is absent.
//
// Complexity: O(Σ deg(id)).
func (g *Graph) Subgraph(ids []string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, ok := g.vertices[id]; !ok {
			return nil, ErrVertexNotFound
		}
		keep[id] = struct{}{}
	}

	sub := g.cloneFlagsLocked()
	for id := range keep {
		v := g.vertices[id]
		sub.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		sub.adjacency[id] = make(map[string]*Edge)
	}
	for id := range keep {
		for nbr, e := range g.adjacency[id] {
			if _, ok := keep[nbr]; ok && id < nbr {
				copyEdgeLocked(sub, e)
			}
		}
	}

	return sub, nil
}
