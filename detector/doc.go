// SPDX-License-Identifier: MIT

// Package detector implements five local community detectors behind one
// Detector contract: Detect(graph, seed) returns the community of the seed.
//
// Algorithms:
//
//   - Neighborhood:   every vertex within Hops hops of the seed.
//   - BridgeBounding: depth-first flood fill that stops at edges whose
//     bridging score (bridging.ELB / bridging.ELB2) exceeds Threshold.
//   - Bagrow:         admits the least outward candidate until the
//     external-edge count reverses its trend twice or MaxSize is reached.
//   - Clauset:        greedy local modularity R = I/T over the community
//     boundary, up to TargetSize members or 10 idle rounds.
//   - LWP:            alternating additions and connectivity-preserving
//     deletions driven by LWPModularity (internal/external edges).
//
// Determinism:
//
//	Candidates are always scanned in ascending key order and the first strict
//	optimum wins, so ties resolve to the lowest key and every run on the same
//	graph gives the same community.
//
// Concurrency:
//
//	Detectors never write to the graph and keep no state between calls.
//	DetectAll fans several seeds out over one graph with errgroup.
//
// Soft failure:
//
//	LWP returns an empty community (and logs a warning) when no community
//	with positive modularity containing the seed was found. This is not an error.
//
// Example:
//
//	d, _ := detector.New(detector.KindClauset, detector.DefaultSettings())
//	c, err := d.Detect(g, "seed")
package detector
