// SPDX-License-Identifier: MIT

// Package dfs implements explicit-stack depth-first reachability on a core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...): walk from a root, or over the whole forest with
//     WithFullTraversal. No recursion, so deep paths cannot exhaust the goroutine stack.
//   - Components(g): connected components, sorted and deterministic.
//   - WithFilterNeighbor restricts the walk to an allowed vertex subset; the
//     community package uses this to test whether a member set is connected.
//
// Complexity:
//
//   - Time:   O(V + E) over the explored region.
//   - Memory: O(V) for the stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
package dfs
