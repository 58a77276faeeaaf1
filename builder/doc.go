// Package builder generates the random graph instances whose MST weight is
// being estimated. It combines the two edge-weight models with a size-dependent
// pruning cut so that the retained edge count stays far below n².
//
// The package offers the following key components:
//
//   - Weight models (Model):
//     – DirectSample:        every pair weight is an independent U[0,1) draw.
//     – CoordinateDistance:  nodes are points in [0,1)^d; weight = Euclidean distance.
//   - Weight functions (WeightFn):
//     – DirectWeightFn, CoordinateWeightFn, EuclideanWeight.
//   - Pruning (Threshold):
//     – At(n) = Scale · n^Exponent; keep iff weight < At(n).
//     – DirectDefaults (1·n^-0.74), Euclidean4DDefaults (1.1·n^-0.18), NoPruning.
//   - Generators:
//     – Generate(n, model, threshold, opts...) – the pruned random graph.
//     – Complete(n, fn)                        – every pair, for fixtures and checks.
//   - Configuration primitives:
//     – BuilderOption: WithSource, WithSeed, WithDimension, WithWorkers, WithCapacityHint.
//
// Guarantees:
//
//   - The random source is an explicit capability (rng.Source); there is no global RNG.
//   - Same options and the same draw sequence ⇒ identical edge set and order.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     structured sentinel errors (errors.Is) for invalid generation parameters.
//
// Pruning is probabilistic: for small n or aggressive thresholds the retained
// edges may not span all nodes. That is reported downstream (prim_kruskal.Result.Complete),
// never hidden here.
package builder
