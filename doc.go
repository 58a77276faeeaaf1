// Package randmst estimates the expected weight of the Minimum Spanning Tree
// of random complete graphs, by Monte-Carlo sampling over pruned instances.
//
// What is measured?
//
//	Two random-graph families on n nodes:
//		• direct:    every pair weight is an independent U[0,1) draw
//		• euclidean: nodes are uniform points in [0,1)^d, weights are distances
//
//	For each size n, a sweep builds several graphs, keeps only the edges under
//	threshold(n) = scale·n^exponent, runs Kruskal and averages the MST weights.
//
// Under the hood, everything is organized by concern:
//
//	rng/          — the Float64 capability, seeding policy, per-trial streams, replay
//	core/         — Edge and the index-addressed Graph (edge list + coordinate arena)
//	dsu/          — disjoint-set union with path compression and union by rank
//	builder/      — weight models, the pruning threshold, the edge generator
//	prim_kruskal/ — Kruskal (primary) and Prim (cross-check) with completeness reporting
//	trial/        — concurrent sweeps, per-size summaries, logging and metrics hooks
//	config/       — YAML sweep files with validation and defaults
//	metrics/      — Prometheus instrumentation
//	report/       — terminal tables, YAML and JSON output
//	cmd/randmst/  — the command-line driver
//
// Quick example (4 nodes, direct weights, keep edges under 0.5):
//
//	g, _ := builder.Generate(4, builder.DirectSample,
//		builder.Threshold{Scale: 0.5}, builder.WithSeed(1))
//	res, _ := prim_kruskal.Kruskal(g)
//	fmt.Println(res.TotalWeight, res.Complete)
//
// A result with Complete == false means the retained edges did not span the
// graph; sweeps count such trials separately and leave them out of the mean.
//
//	go install github.com/katalvlaran/randmst/cmd/randmst@latest
package randmst
