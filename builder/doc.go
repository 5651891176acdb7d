// SPDX-License-Identifier: MIT

// Package builder generates fixture graphs and synthetic community mixtures
// for exercising local community detectors.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator; it creates a
//     core.Graph and applies Constructors in order.
//   - Deterministic topologies: Complete, Path, Cycle, Star, Barbell.
//   - Random topologies: RandomDense (G(n,p)), needs WithSeed or WithRand.
//   - CommunityMixture: a graph with planted communities returned as a
//     community.Partition, the reference against which detections are compared.
//   - Vertex-ID schemes (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn) and weight distributions (DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn).
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrInvalidMixture) wrapped with the method tag.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Barbell(5))
//	// g: cliques a0..a4 and b0..b4 joined by the bridge a4–b0
package builder
