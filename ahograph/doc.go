// Package ahograph builds the auxiliary graphs that drive the recursive
// tree-reconstruction algorithms.
//
// Two constructions are provided, both over a gonum
// simple.WeightedUndirectedGraph whose nodes are the current leaves:
//
//   - Aho: the plain auxiliary graph. Every informative triple ab|c
//     contributes the undirected edge {a, b}; the connected components of
//     the result are exactly the leaf sets that must stay together in the
//     split at the current tree node. Edges may be weighted by triple
//     count or by supplied per-triple weights.
//
//   - MTT: the forcing-mode reduction. Starting from the plain Aho graph
//     and the partition of its connected components, it repeatedly merges
//     blocks that separate some forbidden triple xy|z (x, y together, z
//     apart), because such a triple would otherwise necessarily be
//     displayed. On return no forbidden triple is separated by the final
//     partition.
//
// Auxiliary graphs are rebuilt from scratch at every recursive call and
// never shared between calls.
package ahograph
