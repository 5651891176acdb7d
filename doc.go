// Package localcomm finds the community a seed vertex belongs to by looking
// only at the part of the graph around it.
//
// Where global methods partition a whole graph, a local detector starts from
// one vertex and grows (or bounds) a community outward until a stopping rule
// fires. Five detectors share one interface:
//
//	neighborhood    - every vertex within k hops of the seed
//	bridgebounding  - BFS that refuses to cross edges scored as bridges (ELB/ELB2)
//	bagrow          - greedy growth stopped at the second outwardness cusp
//	clauset         - greedy maximization of the boundary ratio R
//	lwp             - add/delete rounds maximizing internal/external edges
//
// Packages:
//
//	core/       - thread-safe undirected Graph, Vertex, Edge with per-edge measure cache
//	bfs/, dfs/  - traversals used by the detectors and community checks
//	community/  - Community (member set over a graph) and Partition
//	bridging/   - edge bridging measures ELB and ELB2
//	detector/   - the five detectors, factory and concurrent DetectAll
//	builder/    - fixture graphs and synthetic community mixtures
//	config/     - YAML run configuration
//	metrics/    - Prometheus instrumentation of detections
//	cmd/localcomm - CLI running the synthetic benchmark
//
// Quick ASCII example:
//
//	a0───a1       b0───b1
//	 │ ╲  │  a1─b0 │  ╱ │
//	a2───a3       b2───b3
//
// Two dense groups joined by one edge: every detector started at a0 should
// stop at the bridge and return {a0..a3}.
//
//	go get github.com/katalvlaran/localcomm
package localcomm
