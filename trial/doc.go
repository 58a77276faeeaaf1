// Package trial runs Monte-Carlo sweeps estimating the expected MST weight of
// pruned random graphs.
//
// A sweep (Config) fixes a weight model, a pruning threshold and a list of
// sizes. For every size it generates Repetitions independent graphs with
// package builder, solves each with prim_kruskal.Kruskal and aggregates the
// totals into a SizeSummary.
//
// Reproducibility: each trial owns a random stream derived from (Seed, n, rep),
// so TrialWorkers changes throughput, never results.
//
// Incomplete trials (retained edges that fail to span the graph) are reported
// and counted but excluded from Mean/StdDev.
package trial
