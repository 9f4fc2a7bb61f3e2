// Package partition provides the two partition utilities behind the
// tree-reconstruction algorithms:
//
//   - Partition, a disjoint-set (union-find) structure over leaves with
//     path compression and union by size. Merge returns the members of
//     the smaller merged block, which the MTT reduction uses to bound
//     its re-scan cost, and SeparatedXYZ answers the "is the forbidden
//     triple xy|z separated by the current blocks" query directly.
//
//   - KarmarkarKarp / BalancedGrouping, the largest-differencing number
//     partitioning heuristic used by balanced binarization to split a
//     multi-way partition into two weight-balanced sides.
package partition
