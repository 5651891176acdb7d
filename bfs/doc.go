// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first layering over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult with Order, Depth, Parent and Layers.
//   - Optional OnVisit hook (may abort with an error), neighbor filter,
//     depth bound, and context cancellation.
//
// The neighborhood detector uses Within(g, seed, k) to collect the k-hop
// ball around a seed.
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted keys, so the visit sequence is
//	reproducible.
//
// Complexity
//
//   - Time:   O(V + E) over the explored region.
//   - Memory: O(V) for queue, Depth, Parent and visited set.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor enumeration fails.
//   - Wrapped hook errors from OnVisit.
package bfs
