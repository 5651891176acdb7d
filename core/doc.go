// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, simple undirected Graph that every
// local community detector in this module operates on.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are keyed by non-empty strings; lookup is O(1).
//   - Edges are undirected, with no self-loops and no parallel edges.
//   - The same *Edge payload is stored under both endpoints:
//     adjacency[u][v] == adjacency[v][u].
//   - Optional integer weights (WithWeighted); detectors ignore them.
//   - Optional per-edge measure cache (WithMeasureCache / WithEdgeMeasureCache)
//     used by the bridging package to memoize edge scores.
//
// Determinism:
//
//	Vertices(), NeighborIDs(), IncidentEdges() and Edges() return sorted results,
//	so every detector built on top of core is reproducible run to run.
//
// Concurrency:
//
//	One sync.RWMutex guards the vertex index and the adjacency map. Detection
//	only reads, so many detections may share one Graph. Mutating a Graph while
//	communities over it are being grown is not supported.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed. Compare with errors.Is.
//
// Example:
//
//	g := core.NewGraph(core.WithMeasureCache())
//	_, _ = g.AddEdge("A", "B", 0)
//	nbrs, _ := g.NeighborIDs("A") // ["B"]
package core
