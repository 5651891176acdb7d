// SPDX-License-Identifier: MIT

// Package bridging scores how strongly an edge bridges two dense regions.
//
// Measures:
//
//   - ELB (edge local bridging) for edge (u,v), with d = min(deg(u)-1, deg(v)-1):
//     1.0 when d <= 1, otherwise 1 - common(u,v)/d. Edges inside a clique score 0,
//     edges between unrelated neighborhoods score 1.
//   - ELB2: Alpha*ELB(e) + (1-Alpha)*mean(ELB over the incident edges of both
//     endpoints), Alpha = 0.5.
//
// Scores are memoized on edges that carry a measure cache (see
// core.WithMeasureCache); other edges are recomputed on every call.
//
// Example:
//
//	calc, _ := bridging.NewCalculator(g, bridging.ELB)
//	score, _ := calc.Between("A", "D")
package bridging
