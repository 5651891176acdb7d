// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, else 0.
//
// Complexity:
//   • Time: O(n²). Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/localcomm/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg.idFn, 0, n)
		if err := addVertices(g, MethodComplete, ids); err != nil {
			return err
		}

		return connectAll(g, cfg, MethodComplete, ids)
	}
}
