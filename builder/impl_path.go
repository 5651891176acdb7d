// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.

package builder

import "github.com/katalvlaran/localcomm/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg.idFn, 0, n)
		if err := addVertices(g, MethodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
