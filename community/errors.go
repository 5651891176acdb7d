// SPDX-License-Identifier: MIT
package community

import "errors"

// Sentinel errors for community construction and queries.
var (
	// ErrInvalidID is returned when a community id is negative.
	ErrInvalidID = errors.New("community: id must be non-negative")

	// ErrUninitializedCommunity is returned when a Community has no bound graph.
	ErrUninitializedCommunity = errors.New("community: not bound to a graph")

	// ErrVertexNotInGraph is returned when a key does not resolve in the backing graph.
	ErrVertexNotInGraph = errors.New("community: vertex not in graph")

	// ErrInvalidCommunity is returned when a community-wide statistic is requested
	// while some member no longer resolves in the backing graph.
	ErrInvalidCommunity = errors.New("community: members do not resolve in graph")

	// ErrCommunityIndex is returned by Partition.Community for an out-of-range index.
	ErrCommunityIndex = errors.New("community: index out of range")
)
