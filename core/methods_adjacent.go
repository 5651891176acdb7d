// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, IncidentEdges, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - IncidentEdges() is ordered by the opposite endpoint, lex asc.
//   - AdjacencyList() returns per-vertex neighbor slices sorted lex asc.
// Concurrency:
//   - Read operations hold the read lock for a consistent snapshot.
package core

import "sort"

// NeighborIDs returns the vertex IDs adjacent to id, sorted lexicographically ascending.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, copy the keys of adjacency[id] (ErrVertexNotFound if absent).
//   - Stage 3: Sort lexicographically.
//
// Behavior highlights:
//   - Unique output (the graph is simple).
//   - Deterministic order; detectors rely on it for their tie-break policy.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	bucket, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(bucket))
	for nbr := range bucket {
		out = append(out, nbr)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out, nil
}

// IncidentEdges returns the edges touching id, ordered by the opposite endpoint.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(nbrs))
	bucket := g.adjacency[id]
	for _, nbr := range nbrs {
		// A concurrent writer may have removed the edge between the two reads.
		if e, ok := bucket[nbr]; ok {
			out = append(out, e)
		}
	}

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor IDs.
// The returned slices are independent of the graph.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, bucket := range g.adjacency {
		nbrs := make([]string, 0, len(bucket))
		for nbr := range bucket {
			nbrs = append(nbrs, nbr)
		}
		sort.Strings(nbrs)
		out[id] = nbrs
	}

	return out
}
