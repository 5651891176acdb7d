// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// impl_random_dense.go - implementation of RandomDense(n, p) constructor.
//
// Model: every unordered pair {i,j}, i<j, is joined independently when a
// uniform draw reaches 1-p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - One draw per pair in (i asc, j asc) order; fixed seed ⇒ fixed edge set.

package builder

import "github.com/katalvlaran/localcomm/core"

// RandomDense returns a Constructor that samples a G(n, p) random graph.
func RandomDense(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomDense, "n", n, MinDenseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomDense, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomDense, ErrNeedRandSource, "p=%.6f", p)
		}
		ids := indexIDs(cfg.idFn, 0, n)
		if err := addVertices(g, MethodRandomDense, ids); err != nil {
			return err
		}

		return sampleDense(g, cfg, MethodRandomDense, ids, p, cfg.rng)
	}
}
