// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used by every
// local community detector.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrBadWeight       - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed  - self-loop requested (the graph is simple).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex key is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// Equality is by ID alone: two *Vertex values with the same ID denote the same
// vertex of a Graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is the undirected payload shared by both endpoints of a connection.
//
// From/To record the insertion order of the endpoints only; the edge is
// undirected and Other resolves the opposite endpoint.
type Edge struct {
	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is an optional integer intensity (zero in unweighted graphs).
	Weight int64

	// cache is non-nil only for edges that declared the measure-cache capability.
	cache *measureCache
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMeasureCache makes every edge added to the Graph carry a measure cache,
// unless overridden per edge with WithEdgeMeasureCache(false).
func WithMeasureCache() GraphOption {
	return func(g *Graph) { g.cacheMeasures = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

// edgeConfig collects per-edge overrides before the Edge is materialized.
type edgeConfig struct {
	cacheMeasures bool
}

// WithEdgeMeasureCache overrides the graph-wide measure-cache capability for one edge.
func WithEdgeMeasureCache(enabled bool) EdgeOption {
	return func(c *edgeConfig) { c.cacheMeasures = enabled }
}

// Graph is a simple undirected graph with O(1) vertex lookup by key.
//
// Storage:
//
//	vertices[id]            = *Vertex
//	adjacency[id][neighbor] = *Edge   (the same payload is stored under both endpoints)
//
// The vertex index and the adjacency map never diverge: every vertex owns an
// adjacency bucket (possibly empty) and every edge appears in exactly two buckets.
// mu guards both maps; detectors only ever take the read side.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	weighted      bool // allow non-zero weights
	cacheMeasures bool // default measure-cache capability for new edges

	// Storage
	vertices  map[string]*Vertex
	adjacency map[string]map[string]*Edge
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unweighted and edges carry no measure cache.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
