// Package bmgedit is the computational core of best-match-graph editing:
// reconstructing a rooted tree over a set of leaves that best displays a
// collection of triple constraints, and forcing low-cost bipartitions
// whenever no tree can satisfy them all.
//
// The module is organized in small focused packages:
//
//	triples/      - Leaf and Triple value types, pure triple-set restriction
//	partition/    - union-find partitions and Karmarkar-Karp number partitioning
//	ahograph/     - auxiliary (Aho) graph and the MTT forcing-mode reduction
//	partitioning/ - interchangeable bipartition strategies: exact minimum cut,
//	                randomized contraction, greedy and gradient-walk local
//	                search, Louvain hierarchical clustering
//	tree/         - the rooted tree container and displayed-triple queries
//	build/        - the recursive BUILD / MTT tree builders with optional
//	                caterpillar or balanced binarization
//
// Quick example:
//
//	leaves := []triples.Leaf{1, 2, 3, 4}
//	r := []triples.Triple{{A: 1, B: 2, C: 3}, {A: 1, B: 2, C: 4}}
//
//	b, err := build.New(leaves, r, build.WithAllowInconsistency(false))
//	if err != nil { ... }
//	res, err := b.Build()
//	// res.Root is the tree ((1,2),3,4); res.TotalCost is 0.
//
// Derivation of triple sets from domain graphs, exact integer-programming
// editing and distance-based reconstruction are outside this module.
package bmgedit
