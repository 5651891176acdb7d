// SPDX-License-Identifier: MIT
// Package builder provides internal helpers shared by constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/localcomm/core"
)

// addVertices inserts ids in order; core makes re-insertion a no-op.
// Complexity: O(len(ids)).
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// indexIDs renders idFn(from..from+n-1).
func indexIDs(idFn IDFn, from, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(from + i)
	}

	return ids
}

// prefixIDs renders prefix+"0".."n-1".
func prefixIDs(prefix string, n int) []string {
	return indexIDs(SymbolNumberIDFn(prefix), 0, n)
}

// connect adds the edge u–v with the configured weight policy.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.edgeWeight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// connectAll joins every unordered pair of ids, lexicographic by index.
// Complexity: O(len(ids)²).
func connectAll(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := connect(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// sampleDense joins each pair of ids with probability p using one draw per
// pair in index order, so a fixed seed reproduces the same edge set.
// p ∈ {0,1} consumes no randomness.
func sampleDense(g *core.Graph, cfg builderConfig, method string, ids []string, p float64, rng *rand.Rand) error {
	if p <= MinProbability {
		return nil
	}
	if p >= MaxProbability {
		return connectAll(g, cfg, method, ids)
	}

	threshold := 1.0 - p
	for i := 0; i < len(ids)-1; i++ {
		for j := i + 1; j < len(ids); j++ {
			if rng.Float64() < threshold {
				continue
			}
			if err := connect(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}

// validateMin enforces got ≥ min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", param, got, min)
	}

	return nil
}
