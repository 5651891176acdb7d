// SPDX-License-Identifier: MIT
// File: edge_cache.go
// Role: Optional per-edge memoization of computed measures.
//
// Only edges created with the measure-cache capability (WithMeasureCache on the
// graph or WithEdgeMeasureCache(true) on the edge) carry a cache. Callers check
// Cacheable() instead of inspecting the payload type.
//
// Concurrency:
//   - The cache owns its mutex: memoization may happen while many detections
//     read the same graph concurrently.
package core

import "sync"

// measureCache maps a measure key to its computed value.
type measureCache struct {
	mu     sync.Mutex
	values map[string]float64
}

func newMeasureCache() *measureCache {
	return &measureCache{values: make(map[string]float64)}
}

// IsNil reports whether the receiver is nil.
func (e *Edge) IsNil() bool { return e == nil }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
// Complexity: O(1).
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// Cacheable reports whether this edge carries a measure cache.
func (e *Edge) Cacheable() bool { return e.cache != nil }

// CachedMeasure returns the memoized value for key.
// It reports false when the edge is not cacheable or nothing was stored yet.
//
// Complexity: O(1).
func (e *Edge) CachedMeasure(key string) (float64, bool) {
	if e.cache == nil {
		return 0, false
	}
	e.cache.mu.Lock()
	defer e.cache.mu.Unlock()
	v, ok := e.cache.values[key]

	return v, ok
}

// StoreMeasure memoizes value under key and reports whether it was stored.
// Edges without the capability silently decline (false); callers recompute.
//
// Complexity: O(1).
func (e *Edge) StoreMeasure(key string, value float64) bool {
	if e.cache == nil {
		return false
	}
	e.cache.mu.Lock()
	e.cache.values[key] = value
	e.cache.mu.Unlock()

	return true
}
