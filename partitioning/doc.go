// Package partitioning implements the family of interchangeable
// bipartition strategies invoked by the recursive tree builder whenever
// the auxiliary graph yields no natural split (a single connected
// component) and inconsistencies are allowed.
//
// Every strategy returns a partition of the input leaves into at least
// two non-empty, disjoint blocks whose union is the input, together with
// the scalar score it incurred:
//
//   - MinCut: exact global minimum cut (Stoer-Wagner), deterministic;
//     the score is the cut weight.
//   - RandomizedContraction: Karger's repeated random edge contraction;
//     each run proposes a candidate cut scored by the caller's objective,
//     and independent runs execute in parallel.
//   - Greedy: randomized greedy prefix sweep from the empty side,
//     scoring every prefix bipartition with the objective.
//   - GradientWalk: steepest single-leaf descent from a random (or
//     supplied) bipartition to a local optimum.
//   - Louvain: multi-level hierarchical clustering, either maximizing
//     graph modularity or driven directly by a custom objective.
//
// Randomized strategies draw shuffles and tie-breaks from an injected
// *rand.Rand (Options.Rand), so fixed seeds pin their outcomes.
package partitioning
