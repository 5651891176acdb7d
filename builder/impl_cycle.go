// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need loops or parallel edges.
//   - Emits edges i–(i+1) mod n in ascending i.

package builder

import "github.com/katalvlaran/localcomm/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg.idFn, 0, n)
		if err := addVertices(g, MethodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
