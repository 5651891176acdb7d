// SPDX-License-Identifier: MIT

// Package community models a local community: a set of vertex keys bound to
// one core.Graph, plus the Partition type that groups several communities
// over the same graph for reporting.
//
// Invariants:
//
//   - Every key resolves in the backing graph when it is added; adding an
//     absent key fails with ErrVertexNotInGraph.
//   - Re-adding a member is a no-op.
//   - IsValid holds as long as the backing graph is not mutated afterwards.
//
// Detectors build one private Community per call and hand it back to the
// caller; after that the caller owns it.
//
// Errors:
//
//	ErrInvalidID, ErrUninitializedCommunity, ErrVertexNotInGraph,
//	ErrInvalidCommunity, ErrCommunityIndex.
package community
