// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// impl_barbell.go - implementation of Barbell(k) constructor.
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices).
//   • Left clique  cfg.leftPrefix+"0".."k-1", right clique cfg.rightPrefix+"0".."k-1".
//   • One bridge edge joins left[k-1] and right[0].
//
// The barbell is the canonical two-community fixture: every edge is internal
// to a clique except the bridge.

package builder

import "github.com/katalvlaran/localcomm/core"

// Barbell returns a Constructor that builds two K_k cliques joined by a bridge.
func Barbell(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodBarbell, "k", k, MinBarbellClique); err != nil {
			return err
		}
		left := prefixIDs(cfg.leftPrefix, k)
		right := prefixIDs(cfg.rightPrefix, k)
		for _, side := range [][]string{left, right} {
			if err := addVertices(g, MethodBarbell, side); err != nil {
				return err
			}
			if err := connectAll(g, cfg, MethodBarbell, side); err != nil {
				return err
			}
		}

		return connect(g, cfg, MethodBarbell, left[k-1], right[0])
	}
}
