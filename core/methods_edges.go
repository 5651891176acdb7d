// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (min endpoint, max endpoint) asc.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "sort"

// AddEdge connects from and to with a single undirected edge, adding missing endpoints.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Resolve per-edge options against the graph-wide measure-cache default.
//  3. Under the write lock ensure both endpoints exist.
//  4. Return the existing payload if the pair is already connected (simple graph).
//  5. Store the same *Edge under adjacency[from][to] and adjacency[to][from].
//
// Errors:
//   - ErrEmptyVertexID: empty endpoint.
//   - ErrBadWeight: weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed: from == to.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if from == to {
		return nil, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && weight != 0 {
		return nil, ErrBadWeight
	}

	cfg := edgeConfig{cacheMeasures: g.cacheMeasures}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// Re-adding an existing pair is a no-op that returns the live payload.
	if e, ok := g.adjacency[from][to]; ok {
		return e, nil
	}

	e := &Edge{From: from, To: to, Weight: weight}
	if cfg.cacheMeasures {
		e.cache = newMeasureCache()
	}
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e
	g.edgeCount++

	return e, nil
}

// RemoveEdge deletes the edge between a and b.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpointsLocked(a, b); err != nil {
		return err
	}
	if _, ok := g.adjacency[a][b]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.edgeCount--

	return nil
}

// HasEdge reports whether a and b are adjacent. Missing vertices ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edge returns the payload connecting a and b (findEdge).
//
// Implementation:
//   - Stage 1: Validate keys (ErrEmptyVertexID).
//   - Stage 2: Both endpoints must be indexed (ErrVertexNotFound); a lookup between
//     absent vertices is a precondition violation, never a silent miss.
//   - Stage 3: Return the shared payload or ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (*Edge, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEndpointsLocked(a, b); err != nil {
		return nil, err
	}
	e, ok := g.adjacency[a][b]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge once, sorted by (min endpoint, max endpoint).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	for id, bucket := range g.adjacency {
		for nbr, e := range bucket {
			if id < nbr { // each undirected edge is visited from its smaller endpoint only
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ai, bi := orderedPair(out[i])
		aj, bj := orderedPair(out[j])
		if ai != aj {
			return ai < aj
		}
		return bi < bj
	})

	return out
}

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// checkEndpointsLocked validates presence of both endpoints; caller holds a lock.
func (g *Graph) checkEndpointsLocked(a, b string) error {
	if _, ok := g.vertices[a]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[b]; !ok {
		return ErrVertexNotFound
	}

	return nil
}

// orderedPair returns the endpoints of e as (smaller, larger) key.
func orderedPair(e *Edge) (string, string) {
	if e.From < e.To {
		return e.From, e.To
	}

	return e.To, e.From
}
