// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub has the fixed ID CenterVertexID; leaves use cfg.idFn(1..n-1).

package builder

import "github.com/katalvlaran/localcomm/core"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(g, MethodStar, []string{CenterVertexID}); err != nil {
			return err
		}
		leaves := indexIDs(cfg.idFn, 1, n-1)
		if err := addVertices(g, MethodStar, leaves); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := connect(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
